// Command rosdump connects to a RouterOS device, runs one command, and
// prints the decoded replies. It is the library's non-interactive demo;
// a full interactive REPL is deliberately out of scope here.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/mikroapi/routeros"
)

// loadEnvFile loads KEY=VALUE pairs from filename into the process
// environment, without overriding variables already set. Adapted from
// cmd/legacy_monitor/config.go's loadEnvFile, trimmed to this tool's
// handful of settings.
func loadEnvFile(filename string) {
	file, err := os.Open(filename)
	if err != nil {
		return
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])
		if os.Getenv(key) == "" {
			os.Setenv(key, value)
		}
	}
}

func getEnvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func main() {
	loadEnvFile(".env")

	host := flag.String("host", getEnvOrDefault("ROS_HOST", ""), "RouterOS host (or $ROS_HOST)")
	user := flag.String("user", getEnvOrDefault("ROS_USER", ""), "username (or $ROS_USER)")
	pass := flag.String("pass", getEnvOrDefault("ROS_PASS", ""), "password (or $ROS_PASS)")
	port := flag.Int("port", 0, "TCP port (default 8728)")
	token := flag.Bool("legacy-login", false, "use the pre-6.43 MD5 challenge login")
	cmd := flag.String("cmd", "/system/resource/print", "command path to run")
	flag.Parse()

	if *host == "" || *user == "" {
		fmt.Fprintln(os.Stderr, "usage: rosdump -host <host> -user <user> [-pass <pass>] [-cmd <path>]")
		os.Exit(2)
	}

	method := routeros.LoginPlain
	if *token {
		method = routeros.LoginToken
	}

	client, err := routeros.Dial(routeros.Config{
		Host:        *host,
		Port:        *port,
		Username:    *user,
		Password:    *pass,
		LoginMethod: method,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "dial failed:", err)
		os.Exit(1)
	}
	defer client.Close()

	replies, err := client.Run(*cmd, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "command failed:", err)
		os.Exit(1)
	}

	for i, reply := range replies {
		fmt.Printf("record %d:\n", i)
		for _, key := range reply.Keys() {
			value, _ := reply.Get(key)
			fmt.Printf("  %s = %s\n", key, value.String())
		}
	}
}
