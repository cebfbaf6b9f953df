// Command genhash prints the bcrypt hash of a password for ADMIN_PASSWORD_HASH.
//
// Usage: genhash <password>
package main

import (
	"fmt"
	"log"
	"os"

	"velora.backend/pkg/crypto"
)

func main() {
	if len(os.Args) != 2 {
		log.Fatalf("usage: %s <password>", os.Args[0])
	}

	hash, err := crypto.HashPassword(os.Args[1])
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}
	fmt.Println(hash)
}
