package io

import (
	"os"

	u "github.com/zoricak/crcgen/util"
)

func CreateFile(filepath string) (*os.File, error) {
	f, err := os.Create(filepath)
	if err != nil {
		return nil, u.WrapErr("create", err)
	}
	return f, nil
}

func WriteTo(f *os.File, chunk []byte) error {
	if _, err := f.Write(chunk); err != nil {
		return u.WrapErr("write", err)
	}
	return nil
}
