package main

import (
	"flag"
	"fmt"
	"internhub/config"
	"internhub/middleware"
	"log"
)

// Prints a signed JWT for local testing, standing in for the identity provider.
func main() {
	userID := flag.Uint("user", 1, "user id claim")
	name := flag.String("name", "Dev User", "name claim")
	role := flag.String("role", "INTERN", "role claim (INTERN, ADMIN, SUPER_ADMIN)")
	email := flag.String("email", "dev@example.com", "email claim")
	flag.Parse()

	config.LoadConfig()

	token, err := middleware.GenerateJWT(*userID, *name, *role, *email)
	if err != nil {
		log.Fatalf("Failed to sign token: %v", err)
	}

	fmt.Println(token)
}
