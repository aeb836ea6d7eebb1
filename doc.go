/*
Package lyml parses and renders LYML, a small line-oriented subset of YAML.

An LYML document is a sequence of lines. Each line becomes a token.Token
recording its indentation, an optional list marker, an optional block key,
the decoded value and a trailing comment. Structure is carried entirely by
indentation: a nested line must sit exactly one indentation width (2 spaces
by default) deeper than the block key that owns it.

	services:
	  router:
	    class: 'App\Routing\Router' # the default router
	    methods: [ get, post ]
	  cache:
	    - { driver: redis, ttl: 60 }

Values are decoded into the closed set in package value: Null, Bool, Int,
Float, String, List and an insertion-ordered *Map. Tabs are never accepted,
and the first violation aborts the parse with an *errors.ParseError naming
the line (and the file, for ParseFile).

Parsing

	tokens, err := lyml.Parse(data)
	if err != nil {
		// handle error
	}

A Parser holds configuration only, so one value can serve many goroutines:

	p, err := lyml.NewParser(lyml.Indent(4), lyml.Newline("\r\n"))

Rendering

Dump is the inverse of Parse. Blank lines and comments are dropped unless
asked for:

	out, err := lyml.Dump(tokens, lyml.DumpEmptyLines|lyml.DumpComments)

ParseFile and DumpFile go through an afero.Fs, the OS file system unless
WithFs says otherwise.
*/
package lyml
