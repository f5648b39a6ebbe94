package connectors

import (
	"fmt"
	"net/url"
	"path"
	"path/filepath"
	"strings"
)

// Connector reads documents from a base location (a directory, an url, a
// remote sftp folder). Paths given to ReadFileBytes and HasFile are relative
// to that base.
type Connector interface {
	NewFromURI(uri string) Connector

	GetURI() string
	GetScheme() string // file, http, sftp, etc.

	Connect() error
	IsConnected() bool
	Close() error

	ReadFileBytes(remotePath string) ([]byte, error)
	HasFile(remotePath string) bool
}

var CONNECTORS = map[string]Connector{
	SFTP_SCHEME:  new(SFTPConnector),
	FILE_SCHEME:  new(FileConnector),
	HTTP_SCHEME:  new(HttpConnector),
	HTTPS_SCHEME: new(HttpConnector),
}

func FindConnectorFromURI(uri string) Connector {
	for k, connector := range CONNECTORS {
		if strings.HasPrefix(uri, k+"://") {
			return connector.NewFromURI(uri)
		}
	}

	return nil
}

// ReadURI reads a single document, e.g. sftp://user@host/versions/forge.json.
// Paths without a scheme are read from the local filesystem.
func ReadURI(uri string) ([]byte, error) {
	if !strings.Contains(uri, "://") {
		abs, err := filepath.Abs(uri)
		if err != nil {
			return nil, fmt.Errorf("invalid path %s: %w", uri, err)
		}
		uri = FILE_SCHEME + "://" + filepath.ToSlash(abs)
	}

	base, name, err := splitURI(uri)
	if err != nil {
		return nil, err
	}

	connector := FindConnectorFromURI(base)
	if connector == nil {
		return nil, fmt.Errorf("no connector for %s", uri)
	}

	if err := connector.Connect(); err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", connector.GetURI(), err)
	}
	defer connector.Close()

	data, err := connector.ReadFileBytes(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", uri, err)
	}
	return data, nil
}

// splitURI separates the parent location from the document name.
func splitURI(uri string) (string, string, error) {
	parsed, err := url.Parse(uri)
	if err != nil {
		return "", "", fmt.Errorf("invalid uri %s: %w", uri, err)
	}

	p := parsed.Path
	if p == "" || strings.HasSuffix(p, "/") {
		return "", "", fmt.Errorf("uri %s does not point to a file", uri)
	}

	name := path.Base(p)
	parsed.Path = path.Dir(p)
	parsed.RawPath = ""
	return parsed.String(), name, nil
}
