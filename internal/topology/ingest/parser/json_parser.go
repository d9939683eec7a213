package parser

import (
	"encoding/json"
	"os"
)

func ParseJSON(path string) (*YFile, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseJSONBytes(b)
}

func ParseJSONBytes(b []byte) (*YFile, error) {
	var f YFile
	if err := json.Unmarshal(b, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

func ParseJSONString(s string) (*YFile, error) {
	return ParseJSONBytes([]byte(s))
}
