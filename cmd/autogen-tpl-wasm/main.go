// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

//go:build js && wasm

package main

import (
	"fmt"
	"syscall/js"

	cmdpp "github.com/GoogleCloudPlatform/marketplace-autogen/pkg/cmd/preprocess"
	"github.com/GoogleCloudPlatform/marketplace-autogen/pkg/cmd/ui"
	"github.com/GoogleCloudPlatform/marketplace-autogen/pkg/preprocess"
)

type jsFunc func(js.Value, []js.Value) interface{}

func registerFunc(name string, fn jsFunc) {
	js.Global().Set(name, js.FuncOf(fn))
	fmt.Printf("Registered \"%s\" with Global.\n", name)
}

// preprocessText takes the template source and returns the preprocessed text.
func preprocessText(_ js.Value, args []js.Value) interface{} {
	if len(args) != 1 {
		return "expected exactly one argument"
	}
	return preprocess.Preprocess(args[0].String())
}

// preprocessBulk takes and returns the bulk JSON format used by --bulk-in.
func preprocessBulk(_ js.Value, args []js.Value) interface{} {
	if len(args) != 1 {
		return "expected exactly one argument"
	}

	resp, err := cmdpp.NewOptions().RunBulk([]byte(args[0].String()), ui.NewTTY(false))
	if err != nil {
		resp, _ = cmdpp.BulkFiles{Errors: err.Error()}.AsBytes()
	}
	return string(resp)
}

func main() {
	registerFunc("autogenTplPreprocess", preprocessText)
	registerFunc("autogenTplPreprocessBulk", preprocessBulk)

	// Go-based WASM modules must remain running to be available to the runtime.
	<-make(chan int)
}
