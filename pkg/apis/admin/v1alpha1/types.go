package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"

	"github.com/sukryu/pAdmin/pkg/resource"
	"github.com/sukryu/pAdmin/pkg/toast"
)

const (
	GroupVersion = "admin.service/v1alpha1"

	KindResourceInfo     = "ResourceInfo"
	KindResourceInfoList = "ResourceInfoList"
	KindScreen           = "Screen"
)

// ResourceInfo describes one registered resource for navigation and forms.
type ResourceInfo struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec ResourceInfoSpec `json:"spec"`
}

type ResourceInfoSpec struct {
	Label         string                `json:"label"`
	SingularLabel string                `json:"singularLabel"`
	Icon          string                `json:"icon"`
	Sort          int                   `json:"sort"`
	URIKey        string                `json:"uriKey"`
	Columns       []resource.ColumnSpec `json:"columns"`
	Fields        []resource.FieldSpec  `json:"fields"`
	Filters       []resource.FilterSpec `json:"filters,omitempty"`
	Texts         map[string]string     `json:"texts"`
}

// ResourceInfoList contains a list of ResourceInfo
type ResourceInfoList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []ResourceInfo `json:"items"`
}

// NewResourceInfo snapshots the metadata of d.
func NewResourceInfo(d resource.Descriptor) ResourceInfo {
	return ResourceInfo{
		TypeMeta: metav1.TypeMeta{APIVersion: GroupVersion, Kind: KindResourceInfo},
		ObjectMeta: metav1.ObjectMeta{
			Name: d.URIKey(),
		},
		Spec: ResourceInfoSpec{
			Label:         d.Label(),
			SingularLabel: d.SingularLabel(),
			Icon:          d.Icon(),
			Sort:          d.Sort(),
			URIKey:        d.URIKey(),
			Columns:       d.Columns(),
			Fields:        d.Fields(),
			Filters:       d.Filters(),
			Texts: map[string]string{
				"create":      d.CreateButtonLabel(),
				"createToast": d.CreateToastMessage(),
				"update":      d.UpdateButtonLabel(),
				"updateToast": d.UpdateToastMessage(),
				"delete":      d.DeleteButtonLabel(),
				"deleteToast": d.DeleteToastMessage(),
				"save":        d.SaveButtonLabel(),
				"errorToast":  d.ErrorToastMessage(),
			},
		},
	}
}

func NewResourceInfoList(ds []resource.Descriptor) *ResourceInfoList {
	list := &ResourceInfoList{
		TypeMeta: metav1.TypeMeta{APIVersion: GroupVersion, Kind: KindResourceInfoList},
		Items:    make([]ResourceInfo, 0, len(ds)),
	}
	for _, d := range ds {
		list.Items = append(list.Items, NewResourceInfo(d))
	}
	return list
}

// DeepCopy implements runtime.Object interface
func (in *ResourceInfo) DeepCopy() *ResourceInfo {
	if in == nil {
		return nil
	}
	out := new(ResourceInfo)
	in.DeepCopyInto(out)
	return out
}

func (in *ResourceInfo) DeepCopyInto(out *ResourceInfo) {
	*out = *in
	in.ObjectMeta.DeepCopyInto(&out.ObjectMeta)
	out.Spec.Columns = append([]resource.ColumnSpec(nil), in.Spec.Columns...)
	out.Spec.Filters = append([]resource.FilterSpec(nil), in.Spec.Filters...)
	if in.Spec.Fields != nil {
		out.Spec.Fields = make([]resource.FieldSpec, len(in.Spec.Fields))
		for i, f := range in.Spec.Fields {
			f.Options = append([]string(nil), f.Options...)
			out.Spec.Fields[i] = f
		}
	}
	if in.Spec.Texts != nil {
		out.Spec.Texts = make(map[string]string, len(in.Spec.Texts))
		for k, v := range in.Spec.Texts {
			out.Spec.Texts[k] = v
		}
	}
}

func (in *ResourceInfo) DeepCopyObject() runtime.Object {
	return in.DeepCopy()
}

func (in *ResourceInfoList) DeepCopyObject() runtime.Object {
	if in == nil {
		return nil
	}
	out := new(ResourceInfoList)
	*out = *in
	in.ListMeta.DeepCopyInto(&out.ListMeta)
	if in.Items != nil {
		out.Items = make([]ResourceInfo, len(in.Items))
		for i := range in.Items {
			in.Items[i].DeepCopyInto(&out.Items[i])
		}
	}
	return out
}

// Action is one command of a screen's command bar.
type Action struct {
	Label  string `json:"label"`
	Method string `json:"method"`
	Icon   string `json:"icon"`
}

type Pagination struct {
	Page    int   `json:"page"`
	PerPage int   `json:"perPage"`
	Total   int64 `json:"total"`
}

// Screen is the payload rendered by the admin UI for one resource view.
type Screen struct {
	metav1.TypeMeta `json:",inline"`

	Name       string                `json:"name"`
	Resource   string                `json:"resource"`
	CommandBar []Action              `json:"commandBar"`
	Fields     []resource.FieldSpec  `json:"fields,omitempty"`
	Columns    []resource.ColumnSpec `json:"columns,omitempty"`
	Filters    []resource.FilterSpec `json:"filters,omitempty"`
	Data       map[string]any        `json:"data"`
	Toasts     []toast.Toast         `json:"toasts,omitempty"`
	Pagination *Pagination           `json:"pagination,omitempty"`
}

func NewScreen(d resource.Descriptor, name string) *Screen {
	return &Screen{
		TypeMeta: metav1.TypeMeta{APIVersion: GroupVersion, Kind: KindScreen},
		Name:     name,
		Resource: d.URIKey(),
		Data:     map[string]any{},
	}
}
