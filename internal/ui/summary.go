// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package ui renders the boxed summaries printed on the plain-text console.
// Nothing here is interactive: the commands run unattended and only print.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/desktop-commander-setup/models"
)

const notAvailable = "N/A"

// RenderSummary returns the closing box of a successful run.
func RenderSummary(result models.ReconcileResult, info models.AppBuildInfo) string {
	rows := [][2]string{
		{"Config", result.ConfigPath},
		{"Backup", valueOrNA(result.BackupPath)},
		{"Server", result.ServerName},
		{"Launch", launchLine(result.Descriptor)},
		{"Source", valueOrNA(string(result.Source))},
		{"Version", info.BuildVersion()},
	}
	if result.Bootstrapped {
		rows = append(rows, [2]string{"Note", "config file was created"})
	}

	return renderPage("Desktop Commander setup", renderRows(rows))
}

// RenderManualApply returns the box shown when the config file could not be
// written: the target path followed by the full intended document.
func RenderManualApply(configPath string, document []byte) string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		labelStyle.Render("Target")+" "+configPath,
		"",
		codeStyle.Render(strings.TrimRight(string(document), "\n")),
	)

	return renderPage("Apply manually", body)
}

func renderPage(title, body string) string {
	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render(title), "", body))
}

func renderRows(rows [][2]string) string {
	labelWidth := 0
	for _, row := range rows {
		if w := lipgloss.Width(row[0]); w > labelWidth {
			labelWidth = w
		}
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		label := row[0] + strings.Repeat(" ", labelWidth-lipgloss.Width(row[0]))
		lines = append(lines, labelStyle.Render(label)+"  "+row[1])
	}

	return strings.Join(lines, "\n")
}

func launchLine(d models.ServerLaunchDescriptor) string {
	if d.Command == "" {
		return notAvailable
	}

	return strings.TrimSpace(fmt.Sprintf("%s %s", d.Command, strings.Join(d.Args, " ")))
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return notAvailable
	}
	return v
}
