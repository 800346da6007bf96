// proxy/proxy.go
package proxy

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"net/url"

	"github.com/deploymenttheory/go-api-sdk-addigy/logger"
	"go.uber.org/zap"
)

// InitializeProxy routes httpClient through proxyURL. Credentials are sent as basic proxy
// authorization when both username and password are set, otherwise authToken is sent as a bearer
// token when present. An empty proxyURL leaves the client untouched.
func InitializeProxy(httpClient *http.Client, proxyURL, proxyUsername, proxyPassword, authToken string, log logger.Logger) error {
	if proxyURL == "" {
		return nil
	}

	parsedProxyURL, err := url.Parse(proxyURL)
	if err != nil {
		log.Error("Failed to parse proxy URL", zap.Error(err))
		return fmt.Errorf("invalid proxy URL: %w", err)
	}
	if parsedProxyURL.Scheme == "" || parsedProxyURL.Host == "" {
		return log.Error("Proxy URL must include a scheme and host", zap.String("ProxyURL", proxyURL))
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.Proxy = http.ProxyURL(parsedProxyURL)

	switch {
	case proxyUsername != "" && proxyPassword != "":
		credentials := base64.StdEncoding.EncodeToString([]byte(proxyUsername + ":" + proxyPassword))
		transport.ProxyConnectHeader = http.Header{
			"Proxy-Authorization": []string{"Basic " + credentials},
		}
	case authToken != "":
		transport.ProxyConnectHeader = http.Header{
			"Proxy-Authorization": []string{"Bearer " + authToken},
		}
	}

	httpClient.Transport = transport

	log.Info("Proxy configured", zap.String("ProxyURL", parsedProxyURL.Redacted()))
	return nil
}
