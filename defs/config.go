package defs

import (
	"go.uber.org/zap"
)

const DefaultDB = "inflammation"

// Default glob patterns for directory data sources.
const (
	CSVPattern  = "inflammation*.csv"
	JSONPattern = "inflammation*.json"
)

type Config struct {
	Data   DataConfig  `yaml:"data"`
	Mongo  MongoConfig `yaml:"mongo"`
	HTTP   HTTPConfig  `yaml:"http"`
	Logger *zap.Logger `yaml:"-"`
}

type DataConfig struct {
	Dir     string `yaml:"dir"`
	Format  string `yaml:"format"`
	Pattern string `yaml:"pattern"`
}

type MongoConfig struct {
	URI      string `yaml:"uri"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

type HTTPConfig struct {
	Addr string `yaml:"addr"`
}
