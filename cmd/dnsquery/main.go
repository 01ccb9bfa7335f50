// Command dnsquery builds a single DNS A query, sends it to a resolver over
// UDP and hex-dumps both the raw request and the raw response. The response
// is displayed, never parsed.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	miekg "github.com/miekg/dns"
	"golang.org/x/net/idna"

	"github.com/Leowbattle/dnsquery/internal/config"
	"github.com/Leowbattle/dnsquery/internal/dns"
	"github.com/Leowbattle/dnsquery/internal/hexdump"
	"github.com/Leowbattle/dnsquery/internal/history"
	"github.com/Leowbattle/dnsquery/internal/logging"
	"github.com/Leowbattle/dnsquery/internal/transport"
)

func main() {
	var (
		configPath  = flag.String("config", "", "Path to JSON configuration file (or set DNSQUERY_CONFIG)")
		server      = flag.String("server", "", "Resolver address HOST:PORT")
		name        = flag.String("name", "", "Query name (positional argument also accepted)")
		timeout     = flag.Duration("timeout", 0, "Exchange deadline (0 uses the configured value)")
		recvSize    = flag.Int("recv-size", 0, "UDP receive buffer size")
		bind        = flag.String("bind", "", "Local address HOST:PORT to bind the socket")
		id          = flag.Int("id", -1, "Transaction id (0..65535; -1 picks a random one)")
		historyPath = flag.String("history", "", "Record the query in a SQLite history database at this path")
		showHistory = flag.Int("show-history", 0, "Print the N most recent history entries and exit")
		jsonLogs    = flag.Bool("json-logs", false, "Enable JSON structured logging")
		debug       = flag.Bool("debug", false, "Enable debug logging")
		quiet       = flag.Bool("quiet", false, "Suppress hex dumps (exit status indicates success)")
	)
	flag.Parse()

	cfg, err := config.Load(config.ResolveConfigPath(*configPath))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	if *server != "" {
		cfg.Server = *server
	}
	if *timeout != 0 {
		cfg.Timeout = *timeout
	}
	if *recvSize != 0 {
		cfg.RecvSize = *recvSize
	}
	if *bind != "" {
		cfg.LocalAddr = *bind
	}
	if *historyPath != "" {
		cfg.HistoryPath = *historyPath
	}
	if *jsonLogs {
		cfg.Logging.Structured = true
		cfg.Logging.StructuredFormat = "json"
	}
	if *debug {
		cfg.Logging.Level = "DEBUG"
	}

	logger := logging.Configure(logging.Config{
		Level:      cfg.Logging.Level,
		Structured: cfg.Logging.Structured,
		Format:     cfg.Logging.StructuredFormat,
		IncludePID: cfg.Logging.IncludePID,
	})

	if *showHistory > 0 {
		if err := printHistory(cfg.HistoryPath, *showHistory); err != nil {
			fmt.Fprintf(os.Stderr, "dnsquery error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	queryName := cfg.QueryName
	switch {
	case flag.Arg(0) != "":
		queryName = flag.Arg(0)
	case *name != "":
		queryName = *name
	default:
		logger.Info("no query specified, using default", "name", queryName)
	}

	if err := run(logger, cfg, queryName, *id, *quiet); err != nil {
		fmt.Fprintf(os.Stderr, "dnsquery error: %v\n", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, cfg *config.Config, queryName string, idFlag int, quiet bool) error {
	// Internationalized names become ASCII before they reach the codec.
	asciiName, err := idna.Lookup.ToASCII(queryName)
	if err != nil {
		return fmt.Errorf("query name %q: %w", queryName, err)
	}

	txid := miekg.Id()
	if idFlag >= 0 {
		if idFlag > 0xFFFF {
			return fmt.Errorf("transaction id %d out of range", idFlag)
		}
		txid = uint16(idFlag)
	}

	req, err := dns.BuildQuery(asciiName, txid)
	if err != nil {
		return err
	}
	logger.Debug("built query", "name", asciiName, "id", txid, "size", len(req))

	if !quiet {
		fmt.Printf("Query: %s\n", asciiName)
		fmt.Println("Hexdump of DNS request:")
		hexdump.Fprint(os.Stdout, req)
	}

	tr := transport.UDP{
		LocalAddr: cfg.LocalAddr,
		Timeout:   cfg.Timeout,
		RecvSize:  cfg.RecvSize,
	}
	logger.Debug("sending request", "server", cfg.Server, "timeout", cfg.Timeout)

	start := time.Now()
	resp, exchErr := tr.Exchange(context.Background(), cfg.Server, req)
	elapsed := time.Since(start)

	if cfg.HistoryPath != "" {
		entry := history.Entry{
			TransactionID: txid,
			Name:          asciiName,
			Server:        cfg.Server,
			RequestSize:   len(req),
			ResponseSize:  len(resp),
			Duration:      elapsed,
		}
		if exchErr != nil {
			entry.Error = exchErr.Error()
		}
		if err := recordHistory(cfg.HistoryPath, entry); err != nil {
			logger.Warn("failed to record history", "error", err)
		}
	}

	if exchErr != nil {
		return exchErr
	}
	logger.Debug("received response", "size", len(resp), "elapsed", elapsed)

	if !quiet {
		fmt.Println("Hexdump of DNS response:")
		hexdump.Fprint(os.Stdout, resp)
	}
	return nil
}

func recordHistory(path string, e history.Entry) error {
	store, err := history.Open(path)
	if err != nil {
		return err
	}
	defer store.Close()
	return store.Record(e)
}

func printHistory(path string, n int) error {
	if path == "" {
		return fmt.Errorf("no history database configured (use -history or history_path)")
	}
	store, err := history.Open(path)
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.Recent(n)
	if err != nil {
		return err
	}
	for _, e := range entries {
		status := "ok"
		if e.Error != "" {
			status = e.Error
		}
		fmt.Printf("%s  id=%#04x  %s @ %s  req=%dB resp=%dB  %s  %s\n",
			e.QueriedAt.Local().Format(time.RFC3339),
			e.TransactionID, e.Name, e.Server,
			e.RequestSize, e.ResponseSize, e.Duration, status)
	}
	return nil
}
