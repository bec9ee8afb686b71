// Package console is the interactive terminal front end of the trainer.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"learnwords/internal/domain/entities"
	"learnwords/internal/repository"
	"learnwords/internal/service"
)

var (
	correctColor = color.New(color.FgGreen, color.Bold)
	wrongColor   = color.New(color.FgRed, color.Bold)
	promptColor  = color.New(color.FgCyan)
)

// Console drives a single-user training loop on a terminal.
type Console struct {
	in  *bufio.Scanner
	out io.Writer

	userID          int64
	trainers        *service.TrainerRegistry
	dictionary      *service.DictionaryService
	settingsService *service.SettingsService
}

func New(
	in io.Reader,
	out io.Writer,
	userID int64,
	trainers *service.TrainerRegistry,
	dictionary *service.DictionaryService,
	settingsService *service.SettingsService,
) *Console {
	return &Console{
		in:              bufio.NewScanner(in),
		out:             out,
		userID:          userID,
		trainers:        trainers,
		dictionary:      dictionary,
		settingsService: settingsService,
	}
}

// Run shows the main menu until the user exits or input ends.
func (c *Console) Run(ctx context.Context) error {
	for {
		fmt.Fprintln(c.out)
		fmt.Fprintln(c.out, "Меню:")
		fmt.Fprintln(c.out, "  1 — учить слова")
		fmt.Fprintln(c.out, "  2 — добавить слово")
		fmt.Fprintln(c.out, "  3 — статистика")
		fmt.Fprintln(c.out, "  4 — настройки")
		fmt.Fprintln(c.out, "  0 — выход")

		choice, ok := c.readLine("Ваш выбор: ")
		if !ok {
			return nil
		}

		switch strings.TrimSpace(choice) {
		case "1":
			if err := c.runTraining(ctx); err != nil {
				return err
			}
		case "2":
			if err := c.addWord(ctx); err != nil {
				return err
			}
		case "3":
			if err := c.showStatistics(ctx); err != nil {
				return err
			}
		case "4":
			if err := c.editSettings(ctx); err != nil {
				return err
			}
		case "0":
			return nil
		default:
			fmt.Fprintln(c.out, "Введите число от 0 до 4.")
		}
	}
}

// Train runs one training session and returns, for the non-interactive
// `train` subcommand.
func (c *Console) Train(ctx context.Context) error {
	return c.runTraining(ctx)
}

func (c *Console) runTraining(ctx context.Context) error {
	settings, err := c.settingsService.GetOrCreate(ctx, c.userID)
	if err != nil {
		return fmt.Errorf("get settings: %w", err)
	}

	trainer := c.trainers.Trainer(c.userID)
	session := service.NewTrainingSession(trainer)

	question, err := session.Start(ctx, settings.QuizLength, nil)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyDictionary):
			fmt.Fprintln(c.out, "Словарь пуст. Сначала добавьте слова.")
			return nil
		case errors.Is(err, service.ErrNothingToLearn):
			fmt.Fprintln(c.out, "Все слова выучены. Добавьте новые или смените тип занятия.")
			return nil
		default:
			return fmt.Errorf("start training: %w", err)
		}
	}

	for {
		selected, ok := c.askQuestion(question)
		if !ok {
			session.Cancel()
			fmt.Fprintln(c.out, "Занятие прервано.")
			return nil
		}

		result, err := session.SubmitAnswer(ctx, selected)
		if err != nil {
			return fmt.Errorf("submit answer: %w", err)
		}

		if result.Correct {
			correctColor.Fprintln(c.out, "Правильно!")
		} else {
			wrongColor.Fprintf(c.out, "Неправильно. %s — это %s.\n",
				result.Word.Original, result.Word.Translation)
		}

		if result.Done {
			fmt.Fprintf(c.out, "Занятие окончено! Правильных ответов: %d из %d.\n",
				session.Correct(), session.Answered())
			return nil
		}

		question = result.Next
	}
}

// askQuestion prints the prompt with numbered choices and reads a
// 0-based choice index. ok is false when the user quits.
func (c *Console) askQuestion(q *entities.Question) (int, bool) {
	fmt.Fprintln(c.out)
	promptColor.Fprintf(c.out, "Как переводится %q?\n", q.Word.Original)
	for i, choice := range q.Choices {
		fmt.Fprintf(c.out, "  %d — %s\n", i+1, choice.Translation)
	}
	fmt.Fprintln(c.out, "  0 — прервать занятие")

	for {
		line, ok := c.readLine("Ваш ответ: ")
		if !ok {
			return 0, false
		}

		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || n < 0 || n > len(q.Choices) {
			fmt.Fprintf(c.out, "Введите число от 0 до %d.\n", len(q.Choices))
			continue
		}
		if n == 0 {
			return 0, false
		}

		return n - 1, true
	}
}

func (c *Console) addWord(ctx context.Context) error {
	fmt.Fprintln(c.out, "Что добавляем? 1 — слово, 2 — словосочетание, 3 — выражение")

	var kind entities.WordKind
	for {
		line, ok := c.readLine("Тип: ")
		if !ok {
			return nil
		}

		switch strings.TrimSpace(line) {
		case "1":
			kind = entities.KindWord
		case "2":
			kind = entities.KindPhrase
		case "3":
			kind = entities.KindExpression
		default:
			fmt.Fprintln(c.out, "Введите 1, 2 или 3.")
			continue
		}
		break
	}

	original, ok := c.readLine("Оригинал (латиницей): ")
	if !ok {
		return nil
	}
	translation, ok := c.readLine("Перевод (кириллицей): ")
	if !ok {
		return nil
	}

	word, err := c.dictionary.AddWord(ctx, c.userID, original, translation, kind)
	if err != nil {
		if msg := inputErrorMessage(err); msg != "" {
			wrongColor.Fprintln(c.out, msg)
			return nil
		}
		return fmt.Errorf("add word: %w", err)
	}

	correctColor.Fprintf(c.out, "Добавлено: %s — %s\n", word.Original, word.Translation)

	return nil
}

func (c *Console) showStatistics(ctx context.Context) error {
	trainer := c.trainers.Trainer(c.userID)

	stats, err := trainer.Statistics(ctx)
	if err != nil {
		if errors.Is(err, service.ErrEmptyDictionary) {
			fmt.Fprintln(c.out, "Словарь пуст. Сначала добавьте слова.")
			return nil
		}
		return fmt.Errorf("get statistics: %w", err)
	}

	fmt.Fprintf(c.out, "Выучено %d из %d слов (%d%%).\n",
		stats.Learned, stats.Total, stats.ProgressPercent)

	return nil
}

func (c *Console) editSettings(ctx context.Context) error {
	settings, err := c.settingsService.GetOrCreate(ctx, c.userID)
	if err != nil {
		return fmt.Errorf("get settings: %w", err)
	}

	fmt.Fprintf(c.out, "Слов за занятие: %d, тип занятия: %s\n",
		settings.QuizLength, settings.Filter)
	fmt.Fprintln(c.out, "  1 — изменить размер занятия")
	fmt.Fprintln(c.out, "  2 — изменить тип занятия (word/phrase/expression/all)")
	fmt.Fprintln(c.out, "  3 — сбросить прогресс")
	fmt.Fprintln(c.out, "  0 — назад")

	line, ok := c.readLine("Ваш выбор: ")
	if !ok {
		return nil
	}

	switch strings.TrimSpace(line) {
	case "1":
		raw, ok := c.readLine("Сколько слов за занятие? ")
		if !ok {
			return nil
		}
		length, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil || length <= 0 {
			fmt.Fprintln(c.out, "Нужно положительное число.")
			return nil
		}
		if _, err := c.settingsService.UpdateQuizLength(ctx, c.userID, length); err != nil {
			return fmt.Errorf("update quiz length: %w", err)
		}
		fmt.Fprintln(c.out, "Сохранено.")

	case "2":
		raw, ok := c.readLine("Тип занятия: ")
		if !ok {
			return nil
		}
		filter, parsed := entities.ParseKindFilter(strings.TrimSpace(raw))
		if !parsed {
			fmt.Fprintln(c.out, "Допустимые значения: word, phrase, expression, all.")
			return nil
		}
		if _, err := c.settingsService.UpdateFilter(ctx, c.userID, filter); err != nil {
			return fmt.Errorf("update filter: %w", err)
		}
		fmt.Fprintln(c.out, "Сохранено.")

	case "3":
		confirm, ok := c.readLine("Сбросить прогресс? (y/n): ")
		if !ok || strings.TrimSpace(confirm) != "y" {
			fmt.Fprintln(c.out, "Сброс отменён.")
			return nil
		}
		if err := c.trainers.Trainer(c.userID).ResetProgress(ctx); err != nil {
			return fmt.Errorf("reset progress: %w", err)
		}
		fmt.Fprintln(c.out, "Прогресс сброшен.")
	}

	return nil
}

func (c *Console) readLine(prompt string) (string, bool) {
	fmt.Fprint(c.out, prompt)
	if !c.in.Scan() {
		return "", false
	}
	return c.in.Text(), true
}

// inputErrorMessage maps dictionary errors to terminal feedback; an
// empty string means the error is not a user-input problem.
func inputErrorMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrEmptyInput):
		return "Пустая строка."
	case errors.Is(err, service.ErrNotLatin):
		return "Оригинал должен быть латиницей."
	case errors.Is(err, service.ErrNotCyrillic):
		return "Перевод должен быть кириллицей."
	case errors.Is(err, service.ErrWordCountMismatch):
		return "Количество слов не подходит выбранному типу."
	case errors.Is(err, repository.ErrDuplicateWord):
		return "Такая запись уже есть в словаре."
	default:
		return ""
	}
}
