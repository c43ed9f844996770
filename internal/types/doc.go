/*
Package types defines the data structures shared by the trending CLI.

# Records

Language:
  - Entry of the languages endpoint
  - urlParam is the API identifier, name the display label
  - The loader appends the synthetic "All" entry (see WithAll)

Project:
  - Entry of the repositories endpoint
  - language and languageColor are optional and modelled as *string,
    absence changes how the title line is rendered
  - builtBy is decoded but never displayed

# Language filter

The picker works on display names. LanguageIndex turns the chosen name back
into the urlParam used in the query. "All" resolves to itself and means
"no language filter".

# Time ranges

daily, weekly and monthly, in that order. daily is the default.

# Example Structures

Language:
	{"urlParam": "go", "name": "Go"}

Project:
	{
	  "author": "bar",
	  "name": "foo",
	  "url": "https://github.com/bar/foo",
	  "description": "d",
	  "language": "Go",
	  "languageColor": "#00ADD8",
	  "stars": 1,
	  "forks": 0,
	  "currentPeriodStars": 1,
	  "builtBy": []
	}
*/
package types
