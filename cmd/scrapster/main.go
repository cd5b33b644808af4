// Command scrapster extracts and validates professional contact emails
// from profile URLs.
//
// Usage:
//
//	scrapster -keywords "RFID engineer" https://example.com/people/jane
//	cat urls.txt | scrapster -keywords "RFID engineer" -format csv -o results.csv
//	scrapster -keywords "RFID engineer" -print-query
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"

	"github.com/scrapsterhq/scrapster/pkg/auth"
	"github.com/scrapsterhq/scrapster/pkg/export"
	"github.com/scrapsterhq/scrapster/pkg/httpcache"
	"github.com/scrapsterhq/scrapster/pkg/profile"
	"github.com/scrapsterhq/scrapster/pkg/scrapster"
	"github.com/scrapsterhq/scrapster/pkg/search"
	"github.com/scrapsterhq/scrapster/pkg/source"
	"github.com/scrapsterhq/scrapster/pkg/vocab"
)

func main() {
	keywords := flag.String("keywords", "", "keyword phrases, semicolon-separated (required)")
	locations := flag.String("locations", "", "location filters for -print-query, semicolon-separated")
	keywordOp := flag.String("keyword-op", "OR", "operator joining keyword phrases: AND or OR")
	printQuery := flag.Bool("print-query", false, "print the search query for the keywords and exit")
	strictQuery := flag.Bool("strict-query", false, "restrict the printed query to known profile sites")
	debug := flag.Bool("debug", false, "enable debug logging")
	verbose := flag.Bool("v", false, "verbose logging (same as -debug)")
	format := flag.String("format", "json", "output format: json or csv")
	output := flag.String("o", "", "output file (default: stdout)")
	vocabFile := flag.String("vocab", "", "YAML file overriding vocabularies and weights")
	noCache := flag.Bool("no-cache", false, "disable HTTP caching")
	cacheTTL := flag.Duration("cache-ttl", 7*24*time.Hour, "cache time-to-live")
	useBrowser := flag.Bool("browser", false, "also drive a headless browser per profile")
	useAuth := flag.Bool("auth", true, "read session cookies from local browsers for sites that need login")
	infer := flag.Bool("infer", true, "allow last-resort email inference from name and company")
	workers := flag.Int("workers", 4, "concurrent profile fetches")
	flag.Parse()

	logLevel := slog.LevelInfo
	if *debug || *verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	if *keywords == "" {
		fmt.Fprintln(os.Stderr, "Usage: scrapster -keywords <phrases> [options] <url> [url...]")
		fmt.Fprintln(os.Stderr, "\nOptions:")
		flag.PrintDefaults()
		os.Exit(1)
	}

	keywordLines := strings.ReplaceAll(*keywords, ";", "\n")

	if *printQuery {
		q := search.Query{
			Keywords:          keywordLines,
			Locations:         strings.ReplaceAll(*locations, ";", "\n"),
			KeywordOperator:   search.Operator(*keywordOp),
			TargetIndividuals: true,
			Strict:            *strictQuery,
		}
		fmt.Println(q.Build())
		return
	}

	urls, err := collectURLs(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if len(urls) == 0 {
		fmt.Fprintln(os.Stderr, "Error: no profile URLs given (pass as arguments or on stdin)")
		os.Exit(1)
	}

	engineOpts := []scrapster.Option{scrapster.WithLogger(logger)}
	if *vocabFile != "" {
		v, w, err := vocab.Load(*vocabFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		engineOpts = append(engineOpts, scrapster.WithVocabulary(v), scrapster.WithWeights(w))
	}

	var cache *httpcache.Cache
	if !*noCache {
		cache, err = httpcache.NewCache(*cacheTTL)
		if err != nil {
			logger.Warn("failed to initialize cache, continuing without cache", "error", err)
			cache = nil
		}
	}

	client := httpcache.NewClient(cache, logger)
	if *useAuth {
		attachCookies(context.Background(), client, urls, logger)
	}
	page := source.NewPageSource(client, logger)

	sources := []source.Source{page, source.URLSource{}}
	if *useBrowser {
		sources = append(sources, source.NewBrowserSource(logger))
	}
	if *infer {
		sources = append(sources, source.InferSource{})
	}

	engine := scrapster.New(search.Query{Keywords: keywordLines}.KeywordLines(), engineOpts...)
	collector := scrapster.NewCollector(scrapster.WithLogger(logger))

	ctx := context.Background()
	var wg sync.WaitGroup
	sem := make(chan struct{}, max(*workers, 1))

	for _, url := range urls {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			pc := profile.Context{URL: url}
			enriched, err := page.Enrich(ctx, pc)
			if err != nil {
				logger.Info("skipping profile", "url", url, "error", err)
				return
			}

			cands := source.Collect(ctx, logger, enriched, sources...)
			collector.Add(engine.Resolve(enriched, cands))
		}()
	}
	wg.Wait()

	results := collector.Results()
	if err := writeResults(results, *format, *output); err != nil {
		fmt.Fprintf(os.Stderr, "Output error: %v\n", err)
		os.Exit(1)
	}

	printSummary(len(urls), results)
}

// attachCookies loads session cookies for the first authenticated domain
// among the target URLs. Missing cookies are fine; pages just render with
// whatever an anonymous visitor sees.
func attachCookies(ctx context.Context, client *httpcache.Client, urls []string, logger *slog.Logger) {
	for _, domain := range []string{"linkedin.com", "x.com", "github.com"} {
		if !anyURLOnDomain(urls, domain) {
			continue
		}
		cookies, err := auth.ChainSources(ctx, domain, auth.EnvSource{}, auth.NewBrowserSource(logger))
		if err != nil || len(cookies) == 0 {
			continue
		}
		jar, err := auth.NewCookieJar(domain, cookies)
		if err != nil {
			logger.Debug("failed to build cookie jar", "domain", domain, "error", err)
			continue
		}
		// One jar per run; the first authenticated domain wins.
		client.HTTP.Jar = jar
		logger.Debug("session cookies loaded", "domain", domain, "count", len(cookies))
		return
	}
}

func anyURLOnDomain(urls []string, domain string) bool {
	for _, u := range urls {
		if strings.Contains(u, domain) {
			return true
		}
	}
	return false
}

// collectURLs merges URL arguments with URLs piped on stdin.
func collectURLs(args []string) ([]string, error) {
	urls := make([]string, 0, len(args))
	urls = append(urls, args...)

	stat, err := os.Stdin.Stat()
	if err != nil || stat.Mode()&os.ModeCharDevice != 0 {
		return urls, nil
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" && !strings.HasPrefix(line, "#") {
			urls = append(urls, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return urls, nil
}

func writeResults(batch profile.Batch, format, output string) error {
	var w io.Writer = os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return err
		}
		defer f.Close() //nolint:errcheck // intentional
		w = f
	}

	switch format {
	case "csv":
		return export.CSV(w, batch)
	case "json":
		return export.JSON(w, batch)
	default:
		return fmt.Errorf("unknown format %q (want json or csv)", format)
	}
}

func printSummary(total int, results profile.Batch) {
	withEmail := 0
	for _, p := range results {
		if p.Email != "" {
			withEmail++
		}
	}

	bold := color.New(color.Bold)
	bold.Fprintf(os.Stderr, "\n%d profiles checked\n", total)
	color.New(color.FgGreen).Fprintf(os.Stderr, "%d relevant profiles kept\n", len(results))
	color.New(color.FgCyan).Fprintf(os.Stderr, "%d with an email address\n", withEmail)
	if dropped := total - len(results); dropped > 0 {
		color.New(color.FgYellow).Fprintf(os.Stderr, "%d filtered out\n", dropped)
	}
}
