package serde

import (
	"google.golang.org/protobuf/proto"
)

type protobufSerde[T proto.Message] struct{}

func Protobuf[T proto.Message]() Serde[T] {
	return protobufSerde[T]{}
}

func (s protobufSerde[T]) Serialise(topic string, value T) ([]byte, error) {
	return proto.Marshal(value)
}

func (s protobufSerde[T]) Deserialise(topic string, data []byte) (T, error) {
	var zero T
	result := zero.ProtoReflect().Type().New().Interface().(T)
	if err := proto.Unmarshal(data, result); err != nil {
		return zero, err
	}
	return result, nil
}
