package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"
	"time"

	"github.com/kuza-analytics/metrics-gateway/commonGo"
	"github.com/kuza-analytics/metrics-gateway/services/gateway/config"
	"github.com/kuza-analytics/metrics-gateway/services/gateway/factory"
	"github.com/multiversx/mx-chain-core-go/core/check"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/urfave/cli"
)

const (
	defaultLogsPath      = "logs"
	logFilePrefix        = "gateway"
	logFileLifeSpanInSec = 86400 // 24h
	logFileLifeSpanInMB  = 1024  // 1GB
)

// appVersion should be populated at build time using ldflags
// Usage examples:
// Linux/macOS:
//
//	go build -v -ldflags="-X main.appVersion=$(git describe --all | cut -c7-32)
var appVersion = "undefined"
var fileLogging commonGo.FileLoggingHandler

var (
	gatewayHelpTemplate = `NAME:
   {{.Name}} - {{.Usage}}
USAGE:
   {{.HelpName}} {{if .VisibleFlags}}[global options]{{end}}
   {{if len .Authors}}
AUTHOR:
   {{range .Authors}}{{ . }}{{end}}
   {{end}}{{if .Commands}}
GLOBAL OPTIONS:
   {{range .VisibleFlags}}{{.}}
   {{end}}
VERSION:
   {{.Version}}
   {{end}}
`

	log = logger.GetOrCreate("gateway")

	// logLevel defines the logger level
	logLevel = cli.StringFlag{
		Name: "log-level",
		Usage: "This flag specifies the logger `level(s)`. It can contain multiple comma-separated value. For example" +
			", if set to *:INFO the logs for all packages will have the INFO level. However, if set to *:INFO,api:DEBUG" +
			" the logs for all packages will have the INFO level, excepting the api package which will receive a DEBUG" +
			" log level.",
		Value: "*:" + logger.LogInfo.String(),
	}
	// logFile is used when the log output needs to be logged in a file
	logSaveFile = cli.BoolFlag{
		Name:  "log-save",
		Usage: "Boolean option for enabling log saving. If set, it will automatically save all the logs into a file.",
	}
	// workingDirectory defines a flag for the path for the working directory.
	workingDirectory = cli.StringFlag{
		Name:  "working-directory",
		Usage: "This flag specifies the `directory` where the gateway will store the message log and logs.",
		Value: "",
	}
	// configurationFile defines a flag for the path to the main toml configuration file
	configurationFile = cli.StringFlag{
		Name:  "config",
		Usage: "The `filepath` for the main configuration file.",
		Value: "./config.toml",
	}
	// envFile defines a flag for the file holding the secrets
	envFile = cli.StringFlag{
		Name:  "env-file",
		Usage: "The `filepath` for the .env file holding " + config.EnvSourcePassword + ".",
		Value: "./.env",
	}
)

func main() {
	app := cli.NewApp()
	cli.AppHelpTemplate = gatewayHelpTemplate
	app.Name = "Metrics gateway service"
	app.Version = fmt.Sprintf("%s/%s/%s-%s", appVersion, runtime.Version(), runtime.GOOS, runtime.GOARCH)
	app.Usage = "This is the entry point for starting the service that serves the reporting metrics and stores operator messages"
	app.Flags = []cli.Flag{
		logLevel,
		logSaveFile,
		workingDirectory,
		configurationFile,
		envFile,
	}
	app.Authors = []cli.Author{
		{
			Name:  "Kuza Analytics",
			Email: "engineering@kuza-analytics.io",
		},
	}

	app.Action = run

	defer func() {
		if !check.IfNil(fileLogging) {
			_ = fileLogging.Close()
		}
	}()

	err := app.Run(os.Args)
	if err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}

func run(ctx *cli.Context) error {
	saveLogFile := ctx.GlobalBool(logSaveFile.Name)
	workingDir := ctx.GlobalString(workingDirectory.Name)

	err := logger.SetLogLevel(ctx.GlobalString(logLevel.Name))
	if err != nil {
		return err
	}

	fileLogging, err = commonGo.AttachFileLogger(log, defaultLogsPath, logFilePrefix, saveLogFile, workingDir)
	if err != nil {
		return err
	}

	if !check.IfNil(fileLogging) {
		timeLogLifeSpan := time.Second * time.Duration(logFileLifeSpanInSec)
		sizeLogLifeSpanInMB := uint64(logFileLifeSpanInMB)
		err = fileLogging.ChangeFileLifeSpan(timeLogLifeSpan, sizeLogLifeSpanInMB)
		if err != nil {
			return err
		}
	}

	log.Info("Starting metrics gateway", "version", appVersion, "pid", os.Getpid())

	cfg, err := config.LoadConfig(ctx.GlobalString(configurationFile.Name))
	if err != nil {
		return err
	}

	envFileContents := make(map[string]string)
	for _, key := range cfg.RequiredEnvKeys() {
		envFileContents[key] = ""
	}

	err = commonGo.ReadEnvFile(ctx.GlobalString(envFile.Name), envFileContents)
	if err != nil {
		return err
	}

	if len(workingDir) > 0 && !filepath.IsAbs(cfg.MessagesDBPath) {
		cfg.MessagesDBPath = filepath.Join(workingDir, cfg.MessagesDBPath)
	}

	components, err := factory.NewComponentsHandler(envFileContents[config.EnvSourcePassword], *cfg)
	if err != nil {
		return err
	}

	components.Start()

	log.Info("Metrics gateway started", "address", components.GetServer().Address(), "source", cfg.Source.Driver)

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	<-sigs

	log.Info("Application closing, calling Close on all subcomponents...")

	components.Close()

	return nil
}
