package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/cv-assistant/internal/resume"
)

var coverLetterCmd = &cobra.Command{
	Use:   "cover-letter",
	Short: "Write a cover letter for a job",
	Run: func(cmd *cobra.Command, _ []string) {
		coverLetter(cmd)
	},
}

func init() {
	rootCmd.AddCommand(coverLetterCmd)

	coverLetterCmd.Flags().String("company", "", "company you apply to")
	coverLetterCmd.Flags().String("job-title", "", "title of the position")
	coverLetterCmd.Flags().String("name", "", "your full name")
	coverLetterCmd.Flags().String("hiring-manager", "", "name of the hiring manager")
	coverLetterCmd.Flags().String("job-description", "", "job description text")
}

func coverLetter(cmd *cobra.Command) {
	logger, _ := setup()

	flag := func(name string) string {
		value, _ := cmd.Flags().GetString(name)
		return value
	}

	letter, err := resume.ComposeCoverLetter(resume.CoverLetterRequest{
		Company:        flag("company"),
		JobTitle:       flag("job-title"),
		Name:           flag("name"),
		HiringManager:  flag("hiring-manager"),
		JobDescription: flag("job-description"),
	})
	if err != nil {
		logger.Fatal("composing the cover letter", zap.Error(err))
	}

	fmt.Println(letter)
}
