// cmd/irepeatsd/main.go
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"irepeats/internal/clibase"
	"irepeats/internal/server"
	"irepeats/internal/version"
)

func main() {
	fs := flag.NewFlagSet("irepeatsd", flag.ExitOnError)
	var (
		cfg         server.Config
		port        int
		showVersion bool
	)
	clibase.Register(fs, &cfg.Scan)
	fs.IntVar(&port, "port", 8080, "HTTP service port")
	fs.Int64Var(&cfg.MaxBody, "max-body", 64<<20, "maximum request body in bytes")
	fs.BoolVar(&cfg.AllowGCS, "gcs", false, "allow source=gs://bucket/object scans")
	fs.BoolVar(&showVersion, "version", false, "print version and exit")
	_ = fs.Parse(os.Args[1:])

	if showVersion {
		fmt.Printf("irepeatsd version %s\n", version.Version)
		return
	}
	// Query parameters select the patterns; a default --pattern still applies.
	if err := clibase.Validate(&cfg.Scan); err != nil {
		log.Fatalf("invalid defaults: %v", err)
	}

	router := server.NewRouter(gin.Default(), cfg)
	log.Printf("irepeatsd %s listening on :%d", version.Version, port)
	if err := router.Run(fmt.Sprintf(":%d", port)); err != nil {
		log.Fatal(err)
	}
}
