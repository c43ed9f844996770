/*
Package api is the client of the GitHub trending API.

# Overview

Two endpoints are used, both plain GET requests returning JSON arrays:
  - {base}/languages: the languages known to the API
  - {base}/repositories?language={urlParam}&since={range}: trending projects

# Languages

FetchLanguages keeps the API order and appends the synthetic "All" entry,
whose name and urlParam are both "All".

# Repositories

RepositoriesURL builds the query. The language parameter is omitted for
"All" and inserted verbatim otherwise; the same query always yields the
same URL. FetchRepositories accepts BodyFilter functions that rewrite the
raw payload before it is decoded (see package filter).

# Error Handling

Errors are categorized with package apperr:
  - network: transport failures, timeouts, cancelled contexts, non-2xx statuses
  - decode: bodies that are not a JSON array of the expected shape

Nothing is retried.

# Example Usage

	client := api.NewClient(api.DefaultBaseURL, api.DefaultTimeout)
	langs, err := client.FetchLanguages(ctx)
	if err != nil {
		return err
	}
	url := client.RepositoriesURL(types.Query{Language: "go", Since: types.Weekly})
	projects, err := client.FetchRepositories(ctx, url)
*/
package api
