package main

import (
	"github.com/fovesdk/fove-go/cmd"

	_ "github.com/fovesdk/fove-go/capi/native"
)

func main() {
	cmd.Execute()
}
