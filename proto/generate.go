// Package proto holds the provider sidecar gRPC contract and its generated
// bindings. Regenerate with `go generate ./proto` after editing provider.proto.
package proto

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative provider.proto
