package connectors

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

const FILE_SCHEME = "file"

type FileConnector struct {
	Path string
}

func (c *FileConnector) NewFromURI(uri string) Connector {
	// Example: file:///path/to/dir
	parsed, err := url.Parse(uri)
	if err != nil {
		return nil
	}

	pwd, err := os.Getwd()
	if err != nil {
		return nil
	}

	// if the path start with ./ use PWD
	finalPath := parsed.Host + parsed.Path
	if strings.HasPrefix(finalPath, "./") || finalPath == "." {
		finalPath = filepath.Join(pwd, strings.TrimPrefix(finalPath, "."))
	}

	return &FileConnector{
		Path: finalPath,
	}
}

func (c *FileConnector) GetURI() string {
	return FILE_SCHEME + "://" + c.Path
}

func (c *FileConnector) GetScheme() string {
	return FILE_SCHEME
}

func (c *FileConnector) Connect() error {
	return nil
}

func (c *FileConnector) IsConnected() bool {
	return true
}

func (c *FileConnector) Close() error {
	return nil
}

func (c *FileConnector) ReadFileBytes(remotePath string) ([]byte, error) {
	return os.ReadFile(filepath.Join(c.Path, remotePath))
}

func (c *FileConnector) HasFile(remotePath string) bool {
	_, err := os.Stat(filepath.Join(c.Path, remotePath))
	return err == nil
}
