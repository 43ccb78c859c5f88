package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MansourDch/jezzball-clone/share"
)

var (
	shareScore   int
	shareLevel   int
	shareLives   int
	shareFilled  int
	shareMessage string
)

func runShare(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	msg := shareMessage
	if msg == "" {
		msg = cfg.Share.Message
	}
	sum := share.Summary{Score: shareScore, Level: shareLevel, Lives: shareLives, Filled: shareFilled, Variant: cfg.Variant}
	text := sum.Text(msg, cfg.Share.PlayURL)
	u, err := share.ComposeURL(cfg.Share.ComposeBase, text)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, text)
	fmt.Fprintln(out)
	fmt.Fprintln(out, u)
	return nil
}
