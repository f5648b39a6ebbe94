package connectors

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const HTTP_SCHEME = "http"
const HTTPS_SCHEME = "https"

// HTTPTimeout bounds every request.
const HTTPTimeout = 30 * time.Second

var httpClient = resty.New().SetTimeout(HTTPTimeout)

type HttpConnector struct {
	URL string

	Secured bool // https or http
}

func (c *HttpConnector) getURL(remotePath string) string {
	if strings.HasPrefix(remotePath, "/") {
		if strings.HasSuffix(c.URL, "/") {
			return c.URL + strings.TrimPrefix(remotePath, "/")
		}
		return c.URL + remotePath
	}

	if strings.HasSuffix(c.URL, "/") {
		return c.URL + remotePath
	}
	return c.URL + "/" + remotePath
}

func (c *HttpConnector) NewFromURI(uri string) Connector {
	return &HttpConnector{
		URL:     uri,
		Secured: strings.HasPrefix(uri, HTTPS_SCHEME+"://"),
	}
}

func (c *HttpConnector) GetURI() string {
	return c.URL
}

func (c *HttpConnector) GetScheme() string {
	if c.Secured {
		return HTTPS_SCHEME
	}
	return HTTP_SCHEME
}

func (c *HttpConnector) Connect() error {
	return nil
}

func (c *HttpConnector) IsConnected() bool {
	return true
}

func (c *HttpConnector) Close() error {
	return nil
}

/**
* Read the file from remote url
* e.g. https://maven.minecraftforge.net/.../version.json
 */
func (c *HttpConnector) ReadFileBytes(remotePath string) ([]byte, error) {
	url := c.getURL(remotePath)
	resp, err := httpClient.R().Get(url)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("status code: %d", resp.StatusCode())
	}
	return resp.Body(), nil
}

func (c *HttpConnector) HasFile(remotePath string) bool {
	resp, err := httpClient.R().Head(c.getURL(remotePath))
	return err == nil && resp.IsSuccess()
}
