package graph

import "testing"

func TestDecodeLayerRejectsNonStringRef(t *testing.T) {
	data := []byte(`{"list": {"t": "l", "v": [1, "ok"]}}`)
	if _, err := DecodeLayer(data); err == nil {
		t.Fatal("DecodeLayer: expected error for a non-string identifier in a refs array, got nil")
	}
}

func TestDecodeLayerRejectsNonStringCallArg(t *testing.T) {
	data := []byte(`{"call": {"t": "c", "f": "id", "a": [true]}}`)
	if _, err := DecodeLayer(data); err == nil {
		t.Fatal("DecodeLayer: expected error for a non-string call argument, got nil")
	}
}

func TestDecodeLayerRejectsNonStringSwitchValue(t *testing.T) {
	data := []byte(`{"sw": {"t": "w", "m": [{"v": 1}]}}`)
	if _, err := DecodeLayer(data); err == nil {
		t.Fatal("DecodeLayer: expected error for a non-string switch case value, got nil")
	}
}

func TestDecodeLayerRejectsNonStringSwitchCond(t *testing.T) {
	data := []byte(`{"sw": {"t": "w", "m": [{"c": 1, "v": "x"}]}}`)
	if _, err := DecodeLayer(data); err == nil {
		t.Fatal("DecodeLayer: expected error for a non-string switch case condition, got nil")
	}
}
