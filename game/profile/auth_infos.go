package profile

const OfflineUUID = "00000000-0000-0000-0000-000000000000"

// AuthInfos is the authenticated identity handed to the game.
// It is read-only once built.
type AuthInfos struct {
	Username    string  `json:"username" yaml:"username"`
	AccessToken string  `json:"accessToken" yaml:"accessToken"`
	UUID        string  `json:"uuid" yaml:"uuid"`
	ClientToken *string `json:"clientToken,omitempty" yaml:"clientToken,omitempty"`
}

func NewAuthInfos(username string, accessToken string, uuid string) AuthInfos {
	return AuthInfos{
		Username:    username,
		AccessToken: accessToken,
		UUID:        uuid,
	}
}

// Offline returns infos for a player that never authenticated.
func Offline(username string) AuthInfos {
	return NewAuthInfos(username, "0", OfflineUUID)
}

// WithClientToken returns a copy carrying the given client token.
func (a AuthInfos) WithClientToken(clientToken string) AuthInfos {
	a.ClientToken = &clientToken
	return a
}

func (a AuthInfos) HasClientToken() bool {
	return a.ClientToken != nil
}

func (a AuthInfos) GetClientToken() string {
	if a.ClientToken == nil {
		return ""
	}
	return *a.ClientToken
}
