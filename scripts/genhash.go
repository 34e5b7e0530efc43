// One-off: go run scripts/genhash.go [password]
package main

import (
	"fmt"
	"os"

	"printshop/internal/auth"
)

func main() {
	password := "admin"
	if len(os.Args) > 1 {
		password = os.Args[1]
	}
	h, err := auth.HashPassword(password)
	if err != nil {
		panic(err)
	}
	fmt.Print(h)
}
