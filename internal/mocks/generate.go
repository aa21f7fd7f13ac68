package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Source --dir ../feed --output feed --outpkg feedmock --filename source_mock.go
