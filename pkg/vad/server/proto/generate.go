package proto

//go:generate protoc --go_out=. --go-grpc_out=. vad.proto
