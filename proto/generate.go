// Package proto holds the service contracts and their Go bindings.
//
// Requires protoc with protoc-gen-go and protoc-gen-go-grpc on PATH.
package proto

//go:generate protoc --proto_path=.. --go_out=.. --go_opt=paths=source_relative --go-grpc_out=.. --go-grpc_opt=paths=source_relative proto/order/order.proto
//go:generate protoc --proto_path=.. --go_out=.. --go_opt=paths=source_relative --go-grpc_out=.. --go-grpc_opt=paths=source_relative proto/product/product.proto
