package benchmark_test

import (
	"testing"

	"github.com/alecthomas/kong"
	"github.com/spf13/cobra"
	"github.com/urfave/cli/v2"

	"github.com/dzonerzy/go-argr/argr"
)

// Benchmark simple CLI with basic flags
// Every library registers its options and parses the same command line on
// each iteration.

func BenchmarkSimpleCLI_Argr(b *testing.B) {
	args := []string{"bench", "run", "--port", "9000", "--verbose"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		p := argr.New().
			Option("p", "Server port").Alias("port").Default("8080").
			Back().Option("v", "Verbose output").Alias("verbose").
			Back()
		_ = p.Init(args)
		_, _ = p.Get("port")
		_, _ = p.Get("verbose")
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
		_ = rootCmd.Execute()
	}
}

func BenchmarkSimpleCLI_Urfave(b *testing.B) {
	args := []string{"bench", "run", "--port", "9000", "--verbose"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		app := &cli.App{
			Name: "bench",
			Commands: []*cli.Command{
				{
					Name: "run",
					Flags: []cli.Flag{
						&cli.IntFlag{Name: "port", Aliases: []string{"p"}, Value: 8080, Usage: "Server port"},
						&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "Verbose output"},
					},
					Action: func(_ *cli.Context) error { return nil },
				},
			},
		}
		_ = app.Run(args)
	}
}

type simpleKongCLI struct {
	Run struct {
		Port    int  `short:"p" default:"8080" help:"Server port"`
		Verbose bool `short:"v" help:"Verbose output"`
	} `cmd:"" help:"Run benchmark"`
}

func BenchmarkSimpleCLI_Kong(b *testing.B) {
	args := []string{"run", "--port", "9000", "--verbose"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		var grammar simpleKongCLI
		parser, err := kong.New(&grammar, kong.Name("bench"), kong.Exit(func(int) {}))
		if err != nil {
			b.Fatal(err)
		}
		_, _ = parser.Parse(args)
	}
}

// Benchmark combined short flags
// -vqf expands to three boolean options

func BenchmarkCombinedShort_Argr(b *testing.B) {
	args := []string{"bench", "run", "-vqf"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		p := argr.New().
			Option("v", "Verbose").Alias("verbose").
			Back().Option("q", "Quiet").Alias("quiet").
			Back().Option("f", "Force").Alias("force").
			Back()
		_ = p.Init(args)
		_, _ = p.Get("force")
	}
}

func BenchmarkCombinedShort_Cobra(b *testing.B) {
	args := []string{"run", "-vqf"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		rootCmd := &cobra.Command{Use: "bench"}
		runCmd := &cobra.Command{
			Use: "run",
			Run: func(_ *cobra.Command, _ []string) {},
		}
		runCmd.Flags().BoolP("verbose", "v", false, "Verbose")
		runCmd.Flags().BoolP("quiet", "q", false, "Quiet")
		runCmd.Flags().BoolP("force", "f", false, "Force")
		rootCmd.AddCommand(runCmd)
		rootCmd.SetArgs(args)
		_ = rootCmd.Execute()
	}
}

func BenchmarkCombinedShort_Urfave(b *testing.B) {
	args := []string{"bench", "run", "-vqf"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		app := &cli.App{
			Name:                   "bench",
			UseShortOptionHandling: true,
			Commands: []*cli.Command{
				{
					Name:                   "run",
					UseShortOptionHandling: true,
					Flags: []cli.Flag{
						&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}},
						&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}},
						&cli.BoolFlag{Name: "force", Aliases: []string{"f"}},
					},
					Action: func(_ *cli.Context) error { return nil },
				},
			},
		}
		_ = app.Run(args)
	}
}

type combinedKongCLI struct {
	Run struct {
		Verbose bool `short:"v"`
		Quiet   bool `short:"q"`
		Force   bool `short:"f"`
	} `cmd:""`
}

func BenchmarkCombinedShort_Kong(b *testing.B) {
	args := []string{"run", "-vqf"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		var grammar combinedKongCLI
		parser, err := kong.New(&grammar, kong.Name("bench"), kong.Exit(func(int) {}))
		if err != nil {
			b.Fatal(err)
		}
		_, _ = parser.Parse(args)
	}
}

// Benchmark many flags
// Tests performance with many options (realistic CLI tool scenario)

func BenchmarkManyFlags_Argr(b *testing.B) {
	args := []string{
		"bench", "run",
		"--flag1", "test1",
		"--flag2", "test2",
		"--flag3", "test3",
		"--port", "9000",
		"--verbose",
		"--debug",
	}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		p := argr.New().
			Option("flag1", "Flag 1").Default("value1").
			Back().Option("flag2", "Flag 2").Default("value2").
			Back().Option("flag3", "Flag 3").Default("value3").
			Back().Option("flag4", "Flag 4").Default("value4").
			Back().Option("flag5", "Flag 5").Default("value5").
			Back().Option("p", "Port").Alias("port").Default("8080").
			Back().Option("v", "Verbose").Alias("verbose").
			Back().Option("debug", "Debug").
			Back().Option("quiet", "Quiet").
			Back().Option("force", "Force").
			Back()
		_ = p.Init(args)
		_, _ = p.Get("flag1")
	}
}

func BenchmarkManyFlags_Cobra(b *testing.B) {
	args := []string{
		"run",
		"--flag1", "test1",
		"--flag2", "test2",
		"--flag3", "test3",
		"--port", "9000",
		"--verbose",
		"--debug",
	}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		rootCmd := &cobra.Command{Use: "bench"}
		runCmd := &cobra.Command{
			Use: "run",
			Run: func(_ *cobra.Command, _ []string) {},
		}
		runCmd.Flags().String("flag1", "value1", "Flag 1")
		runCmd.Flags().String("flag2", "value2", "Flag 2")
		runCmd.Flags().String("flag3", "value3", "Flag 3")
		runCmd.Flags().String("flag4", "value4", "Flag 4")
		runCmd.Flags().String("flag5", "value5", "Flag 5")
		runCmd.Flags().IntP("port", "p", 8080, "Port")
		runCmd.Flags().BoolP("verbose", "v", false, "Verbose")
		runCmd.Flags().Bool("debug", false, "Debug")
		runCmd.Flags().Bool("quiet", false, "Quiet")
		runCmd.Flags().Bool("force", false, "Force")
		rootCmd.AddCommand(runCmd)
		rootCmd.SetArgs(args)
		_ = rootCmd.Execute()
	}
}

func BenchmarkManyFlags_Urfave(b *testing.B) {
	args := []string{
		"bench", "run",
		"--flag1", "test1",
		"--flag2", "test2",
		"--flag3", "test3",
		"--port", "9000",
		"--verbose",
		"--debug",
	}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		app := &cli.App{
			Name: "bench",
			Commands: []*cli.Command{
				{
					Name: "run",
					Flags: []cli.Flag{
						&cli.StringFlag{Name: "flag1", Value: "value1", Usage: "Flag 1"},
						&cli.StringFlag{Name: "flag2", Value: "value2", Usage: "Flag 2"},
						&cli.StringFlag{Name: "flag3", Value: "value3", Usage: "Flag 3"},
						&cli.StringFlag{Name: "flag4", Value: "value4", Usage: "Flag 4"},
						&cli.StringFlag{Name: "flag5", Value: "value5", Usage: "Flag 5"},
						&cli.IntFlag{Name: "port", Value: 8080, Usage: "Port"},
						&cli.BoolFlag{Name: "verbose", Usage: "Verbose"},
						&cli.BoolFlag{Name: "debug", Usage: "Debug"},
						&cli.BoolFlag{Name: "quiet", Usage: "Quiet"},
						&cli.BoolFlag{Name: "force", Usage: "Force"},
					},
					Action: func(_ *cli.Context) error { return nil },
				},
			},
		}
		_ = app.Run(args)
	}
}

type manyKongCLI struct {
	Run struct {
		Flag1   string `name:"flag1" default:"value1"`
		Flag2   string `name:"flag2" default:"value2"`
		Flag3   string `name:"flag3" default:"value3"`
		Flag4   string `name:"flag4" default:"value4"`
		Flag5   string `name:"flag5" default:"value5"`
		Port    int    `short:"p" default:"8080"`
		Verbose bool   `short:"v"`
		Debug   bool
		Quiet   bool
		Force   bool
	} `cmd:""`
}

func BenchmarkManyFlags_Kong(b *testing.B) {
	args := []string{
		"run",
		"--flag1", "test1",
		"--flag2", "test2",
		"--flag3", "test3",
		"--port", "9000",
		"--verbose",
		"--debug",
	}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		var grammar manyKongCLI
		parser, err := kong.New(&grammar, kong.Name("bench"), kong.Exit(func(int) {}))
		if err != nil {
			b.Fatal(err)
		}
		_, _ = parser.Parse(args)
	}
}
