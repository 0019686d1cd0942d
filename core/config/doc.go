// Package config provides configuration management for mocklet.
//
// It utilizes Viper for loading configuration from struct-tag defaults, an
// optional .env file, environment variables and command-line flags, in
// increasing order of precedence.
//
// # Configuration Structure
//
//   - Server: bind host, port, CORS toggle (SERVER_HOST, SERVER_PORT, SERVER_CORS)
//   - Mock: endpoint, response specifier, status (MOCK_ENDPOINT, MOCK_RESPONSE, MOCK_STATUS)
//   - Storage: optional S3/MinIO backend for s3:// specifiers (STORAGE_*)
//   - Log: logging level and format (LOG_LEVEL, LOG_FORMAT)
//
// # Usage
//
//	fs := pflag.NewFlagSet("mocklet", pflag.ContinueOnError)
//	config.RegisterFlags(fs)
//	_ = fs.Parse(os.Args[1:])
//	cfg, err := config.LoadConfig(".", fs)
package config
