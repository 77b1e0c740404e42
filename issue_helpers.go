package binschema

// IssueAt creates an Issue at the given path with provided code, message and params map.
// This is a convenience helper to improve readability at call sites with many parameters.
func IssueAt(path, code, msg string, params map[string]any) Issue {
	return Issue{Path: path, Code: code, Message: msg, Params: params, Offset: -1}
}

func singleIssue(code, msg string) Issues {
	return AppendIssues(nil, Issue{Path: "/", Code: code, Message: msg, Offset: -1})
}

func fieldIssue(msg string, offset int64, params map[string]any) Issues {
	return AppendIssues(nil, Issue{Path: "/", Code: CodeField, Message: msg, Offset: offset, Params: params})
}

// prefixPath prepends a construct name segment to every issue path in err,
// building the slash-separated location as errors bubble out of the recursion.
// Non-Issues errors and nameless segments pass through unchanged.
func prefixPath(err error, name string) error {
	if err == nil || name == "" {
		return err
	}
	iss, ok := AsIssues(err)
	if !ok {
		return err
	}
	out := make(Issues, len(iss))
	for i, it := range iss {
		if it.Path == "/" || it.Path == "" {
			it.Path = "/" + name
		} else {
			it.Path = "/" + name + it.Path
		}
		out[i] = it
	}
	return out
}

// sizeofIssue wraps an error raised during a size computation so callers can
// tell size-phase failures apart from parse/build failures.
func sizeofIssue(err error) Issues {
	return AppendIssues(nil, Issue{Path: "/", Code: CodeSizeof, Message: "size computation failed", Cause: err, Offset: -1})
}
