package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"inflammation/analysis"
	"inflammation/defs"
	"inflammation/disk"
	ihttp "inflammation/http"
	"inflammation/mg"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

var configFile string

func init() {
	flag.StringVar(&configFile, "f", "config.yaml", "config file")
	flag.Parse()
}

func main() {
	logger, _ := zap.NewDevelopment()
	config := defs.Config{Logger: logger}

	file, err := os.ReadFile(configFile)
	if err != nil {
		panic(err)
	}

	if err = yaml.Unmarshal(file, &config); err != nil {
		panic(err)
	}

	logger.Debug("loaded config file", zap.String("file", configFile))

	an := &analysis.Analyzer{
		Source: newSource(config),
		Logger: logger,
	}

	if config.HTTP.Addr != "" {
		if err := ihttp.New(an).Serve(config.HTTP.Addr); err != nil {
			panic(err)
		}
		return
	}

	days, err := an.Analyze(context.Background())
	if err != nil {
		logger.Fatal("unable to analyze datasets", zap.Error(err))
	}

	for day, v := range days {
		fmt.Printf("%d,%g\n", day, v)
	}
}

func newSource(config defs.Config) analysis.Source {
	if config.Mongo.URI != "" {
		ms, err := mg.New(context.Background(), config.Mongo, defs.DefaultDB, config.Logger)
		if err != nil {
			panic(err)
		}
		return ms
	}

	return &disk.Source{
		Dir:     config.Data.Dir,
		Format:  config.Data.Format,
		Pattern: config.Data.Pattern,
		Logger:  config.Logger,
	}
}
