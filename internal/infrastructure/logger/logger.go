package logger

import "go.uber.org/zap"

// New builds a JSON production logger, or a console logger when
// development is true.
func New(development bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if development {
		config = zap.NewDevelopmentConfig()
	}
	config.OutputPaths = []string{"stdout"}
	return config.Build()
}
