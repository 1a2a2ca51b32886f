package validator

import "time"

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Metrics interface {
		ObserveColorTx(kind string, invalid bool, started time.Time)
	}
)
