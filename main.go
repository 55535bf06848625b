package main

import (
	"fmt"
	"log"
	"os"
	"strings"
	"yatube/config"
	"yatube/db"
	"yatube/models"
	"yatube/router"
	"yatube/storage"

	"github.com/gin-gonic/autotls"
	"github.com/gin-gonic/gin"
)

const usage = `Usage:
  yatube                                      run the web server
  yatube migrate                              create or update the database schema
  yatube group-create <slug> <title> [desc]   add a group
  yatube group-delete <slug>                  delete a group, keeping its posts`

func main() {
	db.Init()
	defer db.Close()
	if err := models.Init(); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	args := os.Args[1:]
	if len(args) == 0 || args[0] == "serve" {
		serve()
		return
	}
	switch args[0] {
	case "migrate":
		log.Println("Database schema is up to date")
	case "group-create":
		if len(args) < 3 {
			exitUsage()
		}
		description := ""
		if len(args) > 3 {
			description = strings.Join(args[3:], " ")
		}
		group, err := models.GroupCreate(args[2], args[1], description)
		if err != nil {
			log.Fatalf("Could not create group: %v", err)
		}
		log.Printf("Created group %d: %s", group.ID, group.Slug)
	case "group-delete":
		if len(args) != 2 {
			exitUsage()
		}
		if err := models.GroupDelete(args[1]); err != nil {
			log.Fatalf("Could not delete group: %v", err)
		}
		log.Printf("Deleted group %s", args[1])
	default:
		exitUsage()
	}
}

func serve() {
	if !config.DEBUG_MODE {
		gin.SetMode(gin.ReleaseMode)
	}
	storage.Init(storage.BucketFromConfig())

	var err error
	if config.TLS_DOMAINS != "" {
		err = autotls.Run(router.New(), strings.Split(config.TLS_DOMAINS, ",")...)
	} else {
		err = router.New().Run(config.BIND_ADDRESS)
	}
	log.Fatalf("Server stopped: %v", err)
}

func exitUsage() {
	fmt.Fprintln(os.Stderr, usage)
	os.Exit(2)
}
