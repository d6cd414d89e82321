package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-cors-origin comma-separated list of allowed browser origins
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token lifetime (e.g., "7d", "24h")
//	-translate-url translation API base URL
//	-predict-url ML prediction service base URL
//	-external-timeout outbound request timeout (e.g., "10s")
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var corsOrigin string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration Duration
	var translateURL string
	var predictURL string
	var externalTimeout Duration

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&corsOrigin, "cors-origin", "", "Allowed CORS origins (comma-separated)")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.Var(&tokenDuration, "token-duration", "Token lifetime (e.g., 7d, 24h)")
	flag.StringVar(&translateURL, "translate-url", "", "Translation API base URL")
	flag.StringVar(&predictURL, "predict-url", "", "ML prediction service base URL")
	flag.Var(&externalTimeout, "external-timeout", "Outbound request timeout (e.g., 10s)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress: serverAddress.String(),
			CORSOrigin:  corsOrigin,
		},
		External: External{
			TranslateBaseURL: translateURL,
			PredictBaseURL:   predictURL,
			RequestTimeout:   externalTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns the lifetime in Go's canonical duration form.
// Implements the flag.Value interface together with [Duration.Set].
func (d *Duration) String() string {
	if d == nil {
		return ""
	}
	return d.Std().String()
}

// Set parses the flag input using the same rules as environment values
// (Go duration strings plus a "d" day suffix).
func (d *Duration) Set(s string) error {
	return d.UnmarshalText([]byte(s))
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string so that the
// merge step treats the flag as unset.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "" && host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
