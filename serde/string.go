package serde

var _ Serde[string] = stringSerde{}

type stringSerde struct{}

// String passes strings through as raw bytes. Used for record keys.
func String() Serde[string] {
	return stringSerde{}
}

func (s stringSerde) Serialise(topic string, value string) ([]byte, error) {
	return []byte(value), nil
}

func (s stringSerde) Deserialise(topic string, data []byte) (string, error) {
	return string(data), nil
}
