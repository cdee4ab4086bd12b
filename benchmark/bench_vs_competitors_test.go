package benchmark_test

import (
	"testing"

	"github.com/lverre/argot/argot"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/urfave/cli/v2"
)

// Benchmark simple CLI with basic flags
// All libraries parse the same command line for a fair comparison

func BenchmarkSimpleCLI_Argot(b *testing.B) {
	bld := argot.New("bench", "benchmark app")
	bld.Option("port", "Server port").Short('p').Default("8080")
	bld.Flag("verbose", "Verbose output").Short('v')
	s, err := bld.Build()
	if err != nil {
		b.Fatal(err)
	}

	args := []string{"--port", "9000", "--verbose"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := s.Parse(args); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSimpleCLI_Pflag(b *testing.B) {
	args := []string{"--port", "9000", "--verbose"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		fs := pflag.NewFlagSet("bench", pflag.ContinueOnError)
		fs.IntP("port", "p", 8080, "Server port")
		fs.BoolP("verbose", "v", false, "Verbose output")
		if err := fs.Parse(args); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSimpleCLI_Cobra(b *testing.B) {
	args := []string{"run", "--port", "9000", "--verbose"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		rootCmd := &cobra.Command{Use: "bench"}
		runCmd := &cobra.Command{
			Use: "run",
			Run: func(_ *cobra.Command, _ []string) {},
		}
		runCmd.Flags().IntP("port", "p", 8080, "Server port")
		runCmd.Flags().BoolP("verbose", "v", false, "Verbose output")
		rootCmd.AddCommand(runCmd)
		rootCmd.SetArgs(args)
		if err := rootCmd.Execute(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSimpleCLI_Urfave(b *testing.B) {
	args := []string{"bench", "--port", "9000", "--verbose"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		app := &cli.App{
			Name: "bench",
			Flags: []cli.Flag{
				&cli.IntFlag{Name: "port", Value: 8080, Usage: "Server port"},
				&cli.BoolFlag{Name: "verbose", Usage: "Verbose output"},
			},
			Action: func(_ *cli.Context) error { return nil },
		}
		if err := app.Run(args); err != nil {
			b.Fatal(err)
		}
	}
}

// Benchmark with subcommands
// Tests command routing plus flag parsing at two levels

func BenchmarkSubcommands_Argot(b *testing.B) {
	bld := argot.New("bench", "benchmark app")
	bld.Flag("global", "Global flag")
	serve := bld.Command("serve", "Start server")
	serve.Option("port", "Server port").Default("8080")
	serve.Option("host", "Server host").Default("localhost")
	s, err := bld.Build()
	if err != nil {
		b.Fatal(err)
	}

	args := []string{"--global", "serve", "--port", "9000", "--host", "0.0.0.0"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := s.Parse(args); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSubcommands_Cobra(b *testing.B) {
	args := []string{"--global", "serve", "--port", "9000", "--host", "0.0.0.0"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		rootCmd := &cobra.Command{Use: "bench"}
		rootCmd.PersistentFlags().Bool("global", false, "Global flag")

		serveCmd := &cobra.Command{
			Use: "serve",
			Run: func(_ *cobra.Command, _ []string) {},
		}
		serveCmd.Flags().IntP("port", "p", 8080, "Server port")
		serveCmd.Flags().String("host", "localhost", "Server host")
		rootCmd.AddCommand(serveCmd)

		rootCmd.SetArgs(args)
		if err := rootCmd.Execute(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSubcommands_Urfave(b *testing.B) {
	args := []string{"bench", "--global", "serve", "--port", "9000", "--host", "0.0.0.0"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		app := &cli.App{
			Name: "bench",
			Flags: []cli.Flag{
				&cli.BoolFlag{Name: "global", Usage: "Global flag"},
			},
			Commands: []*cli.Command{
				{
					Name: "serve",
					Flags: []cli.Flag{
						&cli.IntFlag{Name: "port", Value: 8080, Usage: "Server port"},
						&cli.StringFlag{Name: "host", Value: "localhost", Usage: "Server host"},
					},
					Action: func(_ *cli.Context) error { return nil },
				},
			},
		}
		if err := app.Run(args); err != nil {
			b.Fatal(err)
		}
	}
}

// Benchmark with many flags declared but few given
// Stresses lookup rather than binding

func BenchmarkManyFlags_Argot(b *testing.B) {
	bld := argot.New("bench", "benchmark app")
	names := []string{
		"alpha", "bravo", "charlie", "delta", "echo",
		"foxtrot", "golf", "hotel", "india", "juliet",
	}
	for _, name := range names {
		bld.Option(name, "An option")
	}
	s, err := bld.Build()
	if err != nil {
		b.Fatal(err)
	}

	args := []string{"--alpha", "1", "--juliet", "10"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := s.Parse(args); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkManyFlags_Pflag(b *testing.B) {
	names := []string{
		"alpha", "bravo", "charlie", "delta", "echo",
		"foxtrot", "golf", "hotel", "india", "juliet",
	}
	args := []string{"--alpha", "1", "--juliet", "10"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		fs := pflag.NewFlagSet("bench", pflag.ContinueOnError)
		for _, name := range names {
			fs.String(name, "", "An option")
		}
		if err := fs.Parse(args); err != nil {
			b.Fatal(err)
		}
	}
}
