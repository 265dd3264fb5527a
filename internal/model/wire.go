package model

import "github.com/fluxrelay/eventframe/internal/jsoncodec"

// Wire structs keep the JSON shape of the metadata types separate from
// their validated in-memory form. Encoding goes through jsoncodec so the
// whole module serializes with one configuration.

func marshalWire(v any) ([]byte, error) {
	return jsoncodec.Marshal(v)
}

func unmarshalWire(data []byte, v any) error {
	return jsoncodec.Unmarshal(data, v)
}
