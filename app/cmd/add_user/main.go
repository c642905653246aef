package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/smucherusystems/Student-registration-system/app/config"
	"github.com/smucherusystems/Student-registration-system/app/database"
	"github.com/smucherusystems/Student-registration-system/app/models"
)

func main() {
	firstName := flag.String("first-name", "", "user's first name")
	lastName := flag.String("last-name", "", "user's last name")
	email := flag.String("email", "", "user's email address")
	password := flag.String("password", "", "user's password")
	flag.Parse()

	if *firstName == "" || *email == "" || *password == "" {
		fmt.Println("Usage: add_user -first-name NAME -last-name NAME -email EMAIL -password PASSWORD")
		os.Exit(1)
	}

	// Initialize database connection
	config.InitDB()
	db := config.GetDB()
	if db == nil {
		fmt.Println("Failed to connect to database")
		os.Exit(1)
	}
	defer db.Close()

	user := &models.User{
		FirstName: *firstName,
		LastName:  *lastName,
		Email:     *email,
		Password:  *password,
	}

	if err := database.CreateUser(db, user); err != nil {
		fmt.Printf("Error creating user: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("User created successfully: %s %s (%s)\n", user.FirstName, user.LastName, user.Email)
}
