package compare

//go:generate genopts --opt_type=RunOption --prefix=Run --outfile=runoptions.go "inputDir:string" "outputFile:string"

type RunOption func(*runOptionImpl)

type RunOptions interface {
	InputDir() string
	OutputFile() string
}

func RunInputDir(inputDir string) RunOption {
	return func(opts *runOptionImpl) {
		opts.inputDir = inputDir
	}
}

func RunOutputFile(outputFile string) RunOption {
	return func(opts *runOptionImpl) {
		opts.outputFile = outputFile
	}
}

type runOptionImpl struct {
	inputDir   string
	outputFile string
}

func (r *runOptionImpl) InputDir() string   { return r.inputDir }
func (r *runOptionImpl) OutputFile() string { return r.outputFile }

func makeRunOptionImpl(opts ...RunOption) *runOptionImpl {
	res := &runOptionImpl{}
	for _, opt := range opts {
		opt(res)
	}
	return res
}

func MakeRunOptions(opts ...RunOption) RunOptions {
	return makeRunOptionImpl(opts...)
}
