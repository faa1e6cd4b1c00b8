// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// sealswitch reports type switches over sealed interfaces that do not
// handle every variant.
//
// Usage:
//
//	sealswitch [-config=sealswitch.toml] [-default-exhaustive] [-json] ./...
//	go vet -vettool=$(which sealswitch) ./...
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"code.hybscloud.com/defunc/internal/sealswitch"
)

func main() {
	singlechecker.Main(sealswitch.Analyzer)
}
