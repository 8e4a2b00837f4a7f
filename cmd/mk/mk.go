package main

import (
	"bytes"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/rprtr258/mk"
	md "github.com/rprtr258/mk/contrib/markdown"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := (&cli.App{
		Name:  "mk",
		Usage: "commands runner",
		Commands: []*cli.Command{
			{
				Name:  "imgs",
				Usage: "update example segmentations from orig.png",
				Action: func(*cli.Context) error {
					imgsDir := "img/static"
					sfcmCmd := mk.ShellAlias("go", "run", "./cmd/sfcm", "-i", filepath.Join(imgsDir, "orig.png"))

					for destination, args := range map[string][]string{
						"gray_2":       {"segment", "-n", "2", "--seed", "1"},
						"gray_3":       {"segment", "-n", "3", "--seed", "1"},
						"gray_3_plain": {"segment", "-n", "3", "--seed", "1", "--no-spatial"},
						"gray_3_nb7":   {"segment", "-n", "3", "--seed", "1", "--nb", "7"},
						"rgb_4":        {"segment", "-n", "4", "--seed", "1", "--space", "rgb"},
						"lab_4_hue":    {"segment", "-n", "4", "--seed", "1", "--space", "lab", "--hue"},
						"hsv_4":        {"segment", "-n", "4", "--seed", "1", "--space", "hsv"},
						"blur_3":       {"segment", "-n", "3", "--seed", "1", "--blur", "2"},
						"median_3":     {"segment", "-n", "3", "--seed", "1", "--median", "5"},
						"membership_0": {"membership", "-n", "2", "--seed", "1", "-k", "0"},
					} {
						imageFilename, _ := mk.Must2(sfcmCmd(args...))
						mk.Must0(os.Rename(strings.TrimSpace(imageFilename), filepath.Join(imgsDir, destination+".png")))
					}

					return nil
				},
			},
			{
				Name:  "readme",
				Usage: "compile readme file",
				Action: func(*cli.Context) error {
					b := &bytes.Buffer{}
					md.H1(b, "sfcm - spatial fuzzy c-means image segmentation")

					md.H2(b, "Install")
					md.Code(b, "bash", "go install github.com/rprtr258/sfcm/cmd/sfcm@latest")

					md.H2(b, "Usage")
					usage, _ := mk.Must2(mk.ShellCmd("go", "run", "./cmd/sfcm", "--help"))
					md.Code(b, "php", usage)
					segmentUsage, _ := mk.Must2(mk.ShellCmd("go", "run", "./cmd/sfcm", "segment", "--help"))
					md.Code(b, "php", segmentUsage)

					examples, err := fs.Glob(os.DirFS("img/static"), "*.png")
					if err != nil {
						return err
					}

					rows := make([][]string, 0, 2*(len(examples)/3+1))
					for i := 0; i < len(examples); i += 3 {
						pics := []string{}
						titles := []string{}
						for j := i; j < len(examples) && j < i+3; j++ {
							pics = append(pics, fmt.Sprintf("![](./img/static/%s)", examples[j]))
							titles = append(titles, strings.TrimSuffix(examples[j], ".png"))
						}
						rows = append(rows, pics, titles)
					}

					md.H2(b, "Examples")
					md.Table(b, []string{"", "", ""}, rows)

					mk.Must0(os.WriteFile("README.md", b.Bytes(), 0o644))

					return nil
				},
			},
		},
	}).Run(os.Args); err != nil {
		log.Fatal(err.Error())
	}
}
