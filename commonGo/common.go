package commonGo

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/multiversx/mx-chain-logger-go/file"
)

// AttachFileLogger attaches, if required, a log file
func AttachFileLogger(
	log logger.Logger,
	defaultLogsPath string,
	logFilePrefix string,
	saveLogFile bool,
	workingDir string) (FileLoggingHandler, error) {
	var err error
	var logFile FileLoggingHandler
	if saveLogFile {
		argsFileLogging := file.ArgsFileLogging{
			WorkingDir:      workingDir,
			DefaultLogsPath: defaultLogsPath,
			LogFilePrefix:   logFilePrefix,
		}
		logFile, err = file.NewFileLogging(argsFileLogging)
		if err != nil {
			return nil, fmt.Errorf("%w creating a log file", err)
		}
	}

	err = logger.SetDisplayByteSlice(logger.ToHex)
	log.LogIfError(err)

	return logFile, nil
}

// ReadEnvFile will read the file contents in the provided map. Variables already exported in the process
// environment take precedence over the file, so secrets can also be injected by the orchestrator.
// A key explicitly set to an empty value is accepted.
func ReadEnvFile(envFile string, m map[string]string) error {
	err := godotenv.Load(envFile)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to load env file '%s': %w", envFile, err)
	}

	for k := range m {
		val, found := os.LookupEnv(k)
		if !found {
			return fmt.Errorf("%s is not set in the .env file", k)
		}

		m[k] = val
	}

	return nil
}
