package config

import (
	"fmt"

	"github.com/zalando/go-keyring"
)

const keyringService = "launchyargs"

// SaveAccessToken stores a player's access token in the OS keyring.
func SaveAccessToken(username string, token string) error {
	if err := keyring.Set(keyringService, username, token); err != nil {
		return fmt.Errorf("store access token for %s: %w", username, err)
	}
	return nil
}

func LoadAccessToken(username string) (string, error) {
	token, err := keyring.Get(keyringService, username)
	if err != nil {
		return "", fmt.Errorf("load access token for %s: %w", username, err)
	}
	return token, nil
}

func DeleteAccessToken(username string) error {
	if err := keyring.Delete(keyringService, username); err != nil {
		return fmt.Errorf("delete access token for %s: %w", username, err)
	}
	return nil
}
