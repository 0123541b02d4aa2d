// Copyright 2026 mafs Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package main reports whether this machine satisfies the mafs deployment
// precondition (AVX2+FMA for the double-precision kernels) and which kernel
// set the current build carries.
package main

import (
	"fmt"
	"runtime"

	"golang.org/x/sys/cpu"

	"github.com/alucas2/mafs"
	"github.com/viterin/vek/vek32"
)

func main() {
	fmt.Printf("GOOS: %s\n", runtime.GOOS)
	fmt.Printf("GOARCH: %s\n", runtime.GOARCH)
	fmt.Printf("NumCPU: %d\n", runtime.NumCPU())
	fmt.Println()

	fmt.Printf("mafs kernel set: %s\n", mafs.CurrentLevel())
	fmt.Printf("mafs register width: %d bytes\n", mafs.CurrentWidth())
	fmt.Println()

	if runtime.GOARCH == "amd64" {
		printAMD64Features()
		fmt.Println()
		if cpu.X86.HasAVX2 && cpu.X86.HasFMA {
			fmt.Println("AVX2+FMA precondition: satisfied")
		} else {
			fmt.Println("AVX2+FMA precondition: NOT satisfied; the SIMD build faults here")
		}
		fmt.Println()
	}

	info := vek32.Info()
	fmt.Printf("vek acceleration: %v\n", info.Acceleration)
	fmt.Printf("vek CPU features: %v\n", info.CPUFeatures)
}

func printAMD64Features() {
	fmt.Println("=== golang.org/x/sys/cpu.X86 ===")
	fmt.Printf("  HasAVX:  %v\n", cpu.X86.HasAVX)
	fmt.Printf("  HasAVX2: %v\n", cpu.X86.HasAVX2)
	fmt.Printf("  HasFMA:  %v\n", cpu.X86.HasFMA)
	fmt.Printf("  HasSSE42: %v\n", cpu.X86.HasSSE42)
}
