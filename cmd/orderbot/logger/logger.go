package logger

import "go.uber.org/zap"

func NewLogger() (*zap.SugaredLogger, error) {
	z, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}
	return z.Sugar(), nil
}
