package kwords

// Form is the accepted shape of one command. Min and Max count the
// arguments after the command name.
type Form struct {
	Min   int
	Max   int
	Usage string
}

// Commands maps lower-cased command names to their forms.
var Commands = map[string]Form{
	"newtable":    {2, 2, "newTable|<table>|<col1,col2,...>"},
	"addtotable":  {2, 2, "addToTable|<table>|<val1,val2,...>"},
	"showcolumns": {1, 2, "showColumns|<table>|<col1,col2,...>|all"},
	"sort":        {2, 3, "sort|<table>|<column>[|<output>]"},
	"set":         {5, 5, "set|<table>|<condColumn>|<condValue>|<column>|<value>"},
	"remove":      {3, 9, "remove|<table>|<column>|<value>[|<column>|<value>...]"},
	"formgroups":  {2, 3, "formGroups|<table>|<column>[|<output>]"},
	"filter":      {4, 5, "filter|<table>|<column>|<value>|equalTo|smallerThan|biggerThan[|<output>]"},
	"getcommon":   {4, 5, "getCommon|<table1>|<table2>|<column1>|<column2>[|<output>]"},
	"aggregate":   {3, 3, "aggregate|<table>|<column>|average|sum|minimum|maximum"},
	"bye":         {0, 0, "bye"},
}

const Separator = "|"
