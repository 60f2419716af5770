package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
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
//	-p server port (used when -a is not given)
//	-c/-config json file path with configs
//	-secret shared write secret
//	-hash-key response signing key
//	-log-level log level (debug, info, warn, error)
//	-request-timeout request timeout (e.g., "10s", "1m")
//	-max-body-bytes write request body limit
//	-storage-driver postgres, sqlite, http or memory
//	-collection backend collection name
//	-d database DSN
//	-remote-address remote persistence service URL
//	-remote-timeout remote persistence service call timeout
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var port int
	var jsonConfigPath string
	var secret string
	var hashKey string
	var logLevel string
	var requestTimeout time.Duration
	var maxBodyBytes int64
	var storageDriver string
	var collection string
	var databaseDSN string
	var remoteAddress string
	var remoteTimeout time.Duration

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.IntVar(&port, "p", 0, "Port to listen on")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&secret, "secret", "", "Shared write secret")
	flag.StringVar(&hashKey, "hash-key", "", "Response signing key")
	flag.StringVar(&logLevel, "log-level", "", "Log level")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 10s, 1m)")
	flag.Int64Var(&maxBodyBytes, "max-body-bytes", 0, "Write request body limit in bytes")
	flag.StringVar(&storageDriver, "storage-driver", "", "Storage driver: postgres, sqlite, http or memory")
	flag.StringVar(&collection, "collection", "", "Backend collection name")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&remoteAddress, "remote-address", "", "Remote persistence service URL")
	flag.DurationVar(&remoteTimeout, "remote-timeout", 0, "Remote persistence service call timeout")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			Secret:   secret,
			HashKey:  hashKey,
			LogLevel: logLevel,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			Port:           port,
			RequestTimeout: requestTimeout,
			MaxBodyBytes:   maxBodyBytes,
		},
		Storage: Storage{
			Driver:     storageDriver,
			Collection: collection,
			DB: DB{
				DSN: databaseDSN,
			},
			Remote: Remote{
				Address:        remoteAddress,
				RequestTimeout: remoteTimeout,
			},
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host means all interfaces. It validates the port range and checks
// IP correctness unless host is empty or "localhost".
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

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
