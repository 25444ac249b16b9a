package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// NetAddress holds the structured base address of the Eagle API.
// It implements the pflag.Value interface.
type NetAddress struct {
	Scheme string
	Host   string
	Port   int
}

// BindFlags registers the configuration flags on fs and returns the
// StructuredConfig they write into once fs is parsed. The returned value is
// the flag layer passed to [GetStructuredConfig].
//
// Flags:
//
//	--address          Eagle API address, http://host:port or host:port
//	--timeout          request timeout (e.g. "30s"); zero means none
//	-c, --config       JSON or TOML config file path
//	--log-level        log level (debug, info, warn, error)
//	--log-file         rotating log file path
//	-o, --output       output format: json, yaml or table
func BindFlags(fs *pflag.FlagSet) *StructuredConfig {
	cfg := &StructuredConfig{}
	address := &addressFlag{target: &cfg.Adapter.HTTPAddress}

	fs.Var(address, "address", "Eagle API address, http://host:port or host:port")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "timeout", 0, "Request timeout (e.g. 30s); 0 means none")
	fs.StringVarP(&cfg.FilePath, "config", "c", "", "JSON or TOML config file path")
	fs.StringVar(&cfg.Log.Level, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.Log.FilePath, "log-file", "", "Rotating log file path")
	fs.StringVarP(&cfg.Output, "output", "o", "", "Output format: json, yaml or table")

	return cfg
}

// addressFlag validates --address through NetAddress and stores its
// canonical form in target.
type addressFlag struct {
	addr   NetAddress
	target *string
}

func (f *addressFlag) String() string {
	return f.addr.String()
}

func (f *addressFlag) Set(s string) error {
	if err := f.addr.Set(s); err != nil {
		return err
	}
	*f.target = f.addr.String()
	return nil
}

func (f *addressFlag) Type() string {
	return "address"
}

// String returns the canonical scheme://host:port form of the address, or
// an empty string when nothing was set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	scheme := a.Scheme
	if scheme == "" {
		scheme = "http"
	}
	return scheme + "://" + net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses "host:port" or "scheme://host:port" and populates the
// NetAddress. It validates the scheme and port range, checks IP correctness
// unless host is "localhost", and returns an error if the format or values
// are invalid.
func (a *NetAddress) Set(s string) error {
	s = strings.TrimSpace(s)
	if !strings.Contains(s, "://") {
		s = "http://" + s
	}

	u, err := url.Parse(s)
	if err != nil {
		return fmt.Errorf("parse address: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.New("address scheme must be http or https")
	}

	host, portStr, err := net.SplitHostPort(u.Host)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Scheme = u.Scheme
	a.Host = host
	a.Port = port
	return nil
}

// Type implements pflag.Value.
func (a *NetAddress) Type() string {
	return "address"
}
