/*
Package cli runs the interactive trending pipeline.

# Pipeline

Runner.Run walks the states in order, without going back:

	LoadingLanguages -> PickingLanguage -> PickingTimeRange -> LoadingTrends -> PickingProject -> Done

Any error moves to Failed and is returned to the caller, which exits with status 1.

# Prompts

Prompter abstracts the terminal. TerminalPrompter implements it with bubbletea:
  - language: type-to-filter list ranked with sahilm/fuzzy, "All" first
  - time range: daily, weekly, monthly, daily preselected
  - project: paged list of four-line entries
  - confirm: optional yes/no "Filter by language?" (--confirm)

Prompts are drawn on stderr. stdout receives the "url: ..." line and the result.
*/
package cli
