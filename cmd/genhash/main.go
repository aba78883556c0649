// Genera el hash bcrypt de la contraseña del administrador para
// ADMIN_PASSWORD_HASH. Uso: go run ./cmd/genhash <contraseña>
package main

import (
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "uso: genhash <contraseña>")
		os.Exit(1)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(os.Args[1]), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintln(os.Stderr, "generar hash:", err)
		os.Exit(1)
	}
	fmt.Println(string(hash))
}
