// Command trainer drills the dictionary from a terminal, against the
// same per-user files the bot uses.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"learnwords/internal/delivery/console"
	"learnwords/internal/domain/entities"
	filerepo "learnwords/internal/repository/file"
	"learnwords/internal/service"
)

var (
	dataDir string
	userID  int64
)

func main() {
	root := &cobra.Command{
		Use:   "trainer",
		Short: "Учите иностранные слова в терминале",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := newConsole()
			if err != nil {
				return err
			}
			return c.Run(cmd.Context())
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&dataDir, "data", "data", "directory with dictionary files")
	root.PersistentFlags().Int64Var(&userID, "user", 1, "user id whose dictionary to use")

	train := &cobra.Command{
		Use:   "train",
		Short: "Провести одно занятие и выйти",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := newConsole()
			if err != nil {
				return err
			}
			return c.Train(cmd.Context())
		},
	}

	add := &cobra.Command{
		Use:   "add <original> <translation>",
		Short: "Добавить слово в словарь",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return addWord(cmd, args[0], args[1])
		},
	}
	add.Flags().String("kind", "word", "entry kind: word, phrase or expression")

	stats := &cobra.Command{
		Use:   "stats",
		Short: "Показать прогресс",
		RunE:  showStats,
	}

	reset := &cobra.Command{
		Use:   "reset",
		Short: "Сбросить прогресс (слова остаются)",
		RunE:  resetProgress,
	}

	root.AddCommand(train, add, stats, reset)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRepos() (service.WordRepository, service.SettingsRepository, error) {
	words, err := filerepo.NewWordRepository(dataDir)
	if err != nil {
		return nil, nil, err
	}
	settings, err := filerepo.NewSettingsRepository(dataDir)
	if err != nil {
		return nil, nil, err
	}
	return words, settings, nil
}

func newConsole() (*console.Console, error) {
	words, settings, err := newRepos()
	if err != nil {
		return nil, err
	}

	trainers := service.NewTrainerRegistry(words, settings)
	dictionary := service.NewDictionaryService(words, service.NewValidator())
	settingsService := service.NewSettingsService(settings)

	return console.New(os.Stdin, os.Stdout, userID, trainers, dictionary, settingsService), nil
}

func addWord(cmd *cobra.Command, original, translation string) error {
	words, _, err := newRepos()
	if err != nil {
		return err
	}

	kindValue, _ := cmd.Flags().GetString("kind")
	kind, ok := entities.ParseWordKind(kindValue)
	if !ok {
		return fmt.Errorf("unknown kind %q, want word, phrase or expression", kindValue)
	}

	dictionary := service.NewDictionaryService(words, service.NewValidator())

	word, err := dictionary.AddWord(cmd.Context(), userID, original, translation, kind)
	if err != nil {
		return err
	}

	fmt.Printf("Добавлено: %s — %s\n", word.Original, word.Translation)
	return nil
}

func showStats(cmd *cobra.Command, _ []string) error {
	words, settings, err := newRepos()
	if err != nil {
		return err
	}

	trainer := service.NewTrainer(userID, words, settings, nil)

	stats, err := trainer.Statistics(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Printf("Выучено %d из %d слов (%d%%).\n", stats.Learned, stats.Total, stats.ProgressPercent)
	return nil
}

func resetProgress(cmd *cobra.Command, _ []string) error {
	words, settings, err := newRepos()
	if err != nil {
		return err
	}

	trainer := service.NewTrainer(userID, words, settings, nil)

	if err := trainer.ResetProgress(cmd.Context()); err != nil {
		return err
	}

	fmt.Println("Прогресс сброшен.")
	return nil
}
