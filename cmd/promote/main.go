// Command promote sets the role of an identity by email address. It is used
// to bootstrap the first admin. Running servers pick the new role up when
// their cached session expires.
//
// Usage:
//
//	promote --email=user@example.com [--role=admin]
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/heartmarshall/realty-crm/internal/adapter/postgres"
	"github.com/heartmarshall/realty-crm/internal/adapter/postgres/user"
	"github.com/heartmarshall/realty-crm/internal/config"
	"github.com/heartmarshall/realty-crm/internal/domain"
)

func main() {
	email := flag.String("email", "", "email of the identity to update")
	roleFlag := flag.String("role", string(domain.RoleAdmin), "role to assign")
	flag.Usage = config.Usage(flag.Usage)
	flag.Parse()

	if *email == "" {
		fmt.Fprintln(os.Stderr, "Usage: promote --email=user@example.com [--role=admin]")
		os.Exit(1)
	}
	role, ok := domain.ParseRole(*roleFlag)
	if !ok {
		log.Fatalf("unknown role %q", *roleFlag)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	users := user.New(pool)
	u, err := users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(*email)))
	if err != nil {
		log.Fatalf("find %q: %v", *email, err)
	}
	if u.Role == role {
		fmt.Printf("%s already has role %s.\n", u.Email, role)
		return
	}

	if _, err := users.SetRole(ctx, u.ID, role); err != nil {
		log.Fatalf("set role: %v", err)
	}
	fmt.Printf("%s: %s -> %s\n", u.Email, u.Role, role)
}
