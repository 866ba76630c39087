package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	klog "k8s.io/klog/v2"

	"github.com/meterkit/meterkit/pkg/exporter"
	"github.com/meterkit/meterkit/pkg/featureflag"
	"github.com/meterkit/meterkit/pkg/signals"
	"github.com/meterkit/meterkit/pkg/utils"
)

var configPath string

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.LUTC | log.Lshortfile)
	flag.StringVar(&configPath, "config", "", "path to the exporter configuration file")
	flag.Parse()
}

func main() {
	zapLogger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Error creating logger: %s", err.Error())
	}
	defer func() {
		_ = zapLogger.Sync()
	}()
	logger := zapr.NewLogger(zapLogger)
	klog.SetLogger(logger)

	var configData []byte
	if configPath != "" {
		configData, err = os.ReadFile(configPath)
		if err != nil {
			log.Fatalf("Error reading configuration file %q: %s", configPath, err.Error())
		}
	}

	config, err := exporter.LoadConfig(configData)
	if err != nil {
		log.Fatalf("Error loading configuration: %s", err.Error())
	}

	featureflag.Log(logger)

	stopCh := signals.SetupShutdownSignalHandler()
	signals.SetupThreadDumpSignalHandler()

	ctx := utils.NewLoggingContextWithValues(context.Background(), &logger, "exporter")

	if err := exporter.New(config).Run(ctx, stopCh); err != nil {
		log.Fatalf("Error running exporter: %s", err.Error())
	}
}
