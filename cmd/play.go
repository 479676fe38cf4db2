package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/bilim/internal/content"
	"github.com/abhisek/bilim/internal/i18n"
	"github.com/abhisek/bilim/internal/leaderboard"
	"github.com/abhisek/bilim/internal/quiz"
	"github.com/abhisek/bilim/internal/session"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a quick quiz from the question bank in the console",
	RunE: func(cmd *cobra.Command, args []string) error {
		v := viperForCmd(cmd)

		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		ctx := cmd.Context()
		qs, err := d.content.GetQuestions(ctx, v.GetInt("count"))
		if err != nil {
			return err
		}

		game := session.NewGame()
		game.SetQuestions(qs)
		game.StartGame()

		c := &console{
			in:    bufio.NewScanner(cmd.InOrStdin()),
			out:   cmd.OutOrStdout(),
			tr:    d.i18n,
			svc:   d.content,
			game:  game,
			clock: time.Now,
		}
		if err := c.play(ctx); err != nil {
			return err
		}

		others, err := d.content.GetLeaderboard(ctx)
		if err != nil {
			return fmt.Errorf("get leaderboard: %w", err)
		}
		me := d.profile.Profile().Player()
		if me.Name == "" {
			me.Name = d.i18n.T("You")
		}
		me.Score = game.Score()

		fmt.Fprintln(c.out)
		printBoard(c.out, leaderboard.Assemble(others, me), d.i18n.T("You"))
		return nil
	},
}

// console runs a game over line-oriented input.
type console struct {
	in    *bufio.Scanner
	out   io.Writer
	tr    *i18n.Store
	svc   *content.Service
	game  *session.Game
	clock func() time.Time
}

// play asks every question of the game in turn. An answer given after the
// question's time limit counts as a timeout.
func (c *console) play(ctx context.Context) error {
	limit := time.Duration(c.game.TimePerQuestion()) * time.Second
	total := len(c.game.Snapshot().Questions)

	for {
		q, ok := c.game.CurrentQuestion()
		if !ok {
			break
		}

		fmt.Fprintf(c.out, "\n%s\n%s\n", c.tr.Td("Question", map[string]any{
			"Number": c.game.Index() + 1,
			"Total":  total,
		}), q.Text)
		for i, opt := range q.Options {
			fmt.Fprintf(c.out, "  %d) %s\n", i+1, opt)
		}

		start := c.clock()
		index, err := c.readAnswer(len(q.Options))
		if err != nil {
			return err
		}
		remaining := (limit - c.clock().Sub(start)).Seconds()
		if remaining <= 0 {
			index, remaining = -1, 0
			fmt.Fprintln(c.out, c.tr.T("TimeUp"))
		}

		res, err := c.svc.SubmitAnswer(ctx, c.game, q.ID, index, remaining)
		if err != nil {
			return fmt.Errorf("submit answer: %w", err)
		}
		if res.Correct {
			if err := c.game.AddScore(res.Points); err != nil {
				return fmt.Errorf("add score: %w", err)
			}
			fmt.Fprintf(c.out, "✓ %s %s\n", c.tr.T("Correct"),
				c.tr.Td("PointsEarned", map[string]any{"Points": res.Points}))
		} else {
			fmt.Fprintf(c.out, "✗ %s %s %s\n", c.tr.T("Incorrect"), c.tr.T("CorrectAnswerIs"), q.Options[res.CorrectIndex])
		}
		c.game.RecordAnswer(res.Correct)

		if c.game.IsLast() {
			break
		}
		if err := c.game.NextQuestion(); err != nil {
			return err
		}
	}

	c.game.Finish()
	sum := c.game.Summary()
	fmt.Fprintf(c.out, "\n%s: %d   %s: %d/%d\n",
		c.tr.T("TotalScore"), sum.Score, c.tr.T("CorrectAnswers"), sum.Correct, sum.TotalQuestions)
	return nil
}

// readAnswer reads lines until one holds a number in [1, n] and returns it
// zero-based. End of input is an error.
func (c *console) readAnswer(n int) (int, error) {
	for {
		fmt.Fprintf(c.out, "> ")
		if !c.in.Scan() {
			if err := c.in.Err(); err != nil {
				return 0, err
			}
			return 0, io.ErrUnexpectedEOF
		}
		i, err := strconv.Atoi(strings.TrimSpace(c.in.Text()))
		if err == nil && i >= 1 && i <= n {
			return i - 1, nil
		}
		fmt.Fprintf(c.out, "1-%d\n", n)
	}
}

func init() {
	playCmd.Flags().IntP("count", "n", quiz.DefaultQuestionCount, "Number of questions")
}
