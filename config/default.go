package config

import "time"

func GetDefault() Config {
	return Config{
		RepoPath:       ".",
		LogTimeout:     Duration(10 * time.Second),
		RewriteTimeout: Duration(60 * time.Second),
	}
}
