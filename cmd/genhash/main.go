package main

import (
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
)

// genhash prints the bcrypt hash to store in OPERATOR_PASSWORD_HASH.
func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "uso: genhash <contraseña>")
		os.Exit(1)
	}
	h, err := bcrypt.GenerateFromPassword([]byte(os.Args[1]), 12)
	if err != nil {
		panic(err)
	}
	fmt.Println(string(h))
}
