package handler

const (
	StartMessage = `<b>League table</b>

Send /table followed by one team per line:
<pre>/table
Liverpool,12,3,1
Chelsea,10,5,2
Arsenal,9,6,2</pre>

Add <code>asc</code> after the command for ascending order: <code>/table asc</code>.
Up to 20 teams.`

	TableMissingInput = "Add team rows after the command, one per line: Team, Won, Drawn, Lost"
	TableEmpty        = "No teams in the input."
	TableFailed       = "Something went wrong, please try again."
)
