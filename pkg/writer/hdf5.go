package writer

import (
	"fmt"

	hdf5 "github.com/jmbenlloch/go-hdf5"
	evaluation "github.com/next-exp/evaluation_go/pkg"
)

func openFile(fname string) (*hdf5.File, error) {
	f, err := hdf5.CreateFile(fname, hdf5.F_ACC_TRUNC)
	if err != nil {
		return nil, &evaluation.ErrOpenFile{Filename: fname, Err: err}
	}
	return f, nil
}

func createGroup(file *hdf5.File, groupName string) (*hdf5.Group, error) {
	g, err := file.CreateGroup(groupName)
	if err != nil {
		return nil, &evaluation.ErrCreateGroup{GroupName: groupName, Err: err}
	}
	return g, nil
}

func createTable(group *hdf5.Group, name string, datatype interface{}, compressionLevel int) (*hdf5.Dataset, error) {
	dims := []uint{0}
	unlimitedDims := -1 // H5S_UNLIMITED is -1L
	maxDims := []uint{uint(unlimitedDims)}
	fileSpace, err := hdf5.CreateSimpleDataspace(dims, maxDims)
	if err != nil {
		return nil, &evaluation.ErrCreateTable{TableName: name, Err: err}
	}
	defer fileSpace.Close()

	// create property list
	plist, err := hdf5.NewPropList(hdf5.P_DATASET_CREATE)
	if err != nil {
		return nil, &evaluation.ErrCreateTable{TableName: name, Err: err}
	}
	defer plist.Close()

	chunks := []uint{32768}
	if err := plist.SetChunk(chunks); err != nil {
		return nil, &evaluation.ErrCreateTable{TableName: name, Err: err}
	}
	if err := plist.SetDeflate(compressionLevel); err != nil {
		return nil, &evaluation.ErrCreateTable{TableName: name, Err: err}
	}

	// create the memory data type
	dtype, err := hdf5.NewDatatypeFromValue(datatype)
	if err != nil {
		return nil, &evaluation.ErrCreateTable{TableName: name, Err: err}
	}

	dset, err := group.CreateDatasetWith(name, dtype, fileSpace, plist)
	if err != nil {
		return nil, &evaluation.ErrCreateTable{TableName: name, Err: err}
	}
	return dset, nil
}

// writeArrayToTable appends data at the end of a one dimensional table.
func writeArrayToTable[T any](dataset *hdf5.Dataset, name string, data *[]T) error {
	length := uint(len(*data))
	if length == 0 {
		return nil
	}

	currentSpace := dataset.Space()
	dims, _, err := currentSpace.SimpleExtentDims()
	currentSpace.Close()
	if err != nil {
		return &evaluation.ErrWriteTable{TableName: name, Err: err}
	}
	rowsInFile := dims[0]

	dataspace, err := hdf5.CreateSimpleDataspace([]uint{length}, nil)
	if err != nil {
		return &evaluation.ErrWriteTable{TableName: name, Err: err}
	}
	defer dataspace.Close()

	// extend
	if err := dataset.Resize([]uint{rowsInFile + length}); err != nil {
		return &evaluation.ErrWriteTable{TableName: name, Err: err}
	}
	filespace := dataset.Space()
	defer filespace.Close()

	start := []uint{rowsInFile}
	count := []uint{length}
	if err := filespace.SelectHyperslab(start, nil, count, nil); err != nil {
		return &evaluation.ErrWriteTable{TableName: name, Err: err}
	}

	if err := dataset.WriteSubset(data, dataspace, filespace); err != nil {
		return &evaluation.ErrWriteTable{TableName: name, Err: fmt.Errorf("writing %d rows: %w", length, err)}
	}
	return nil
}
